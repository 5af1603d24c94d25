package usecase

import (
	"context"
	"io"
	"strings"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"
	"patients-care-api/internal/infrastructure/storage"
	"patients-care-api/internal/service"
	"patients-care-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, actor entity.Identity, accessTokenID, refreshToken string) error
	GetCurrentUser(ctx context.Context, actor entity.Identity) (*dto.AccountResponse, error)
	UpdateCurrentUser(ctx context.Context, actor entity.Identity, req *dto.UpdateAccountRequest) error
	DeleteCurrentUser(ctx context.Context, actor entity.Identity) error
	UpdatePassword(ctx context.Context, actor entity.Identity, req *dto.UpdatePasswordRequest) error
	UploadPhoto(ctx context.Context, actor entity.Identity, file io.Reader) error
	RemovePhoto(ctx context.Context, actor entity.Identity) error
}

type authUsecase struct {
	log          *logrus.Logger
	accountRepo  repository.AccountRepository
	doctorRepo   repository.DoctorRepository
	patientRepo  repository.PatientRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	photoStorage storage.PhotoStorage
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	photoStorage storage.PhotoStorage,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		accountRepo:  accountRepo,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		photoStorage: photoStorage,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// emails are unique across both account tables since login searches both
	existing, err := u.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	var identity entity.Identity
	switch entity.Role(req.Role) {
	case entity.RoleDoctor:
		doctor := &entity.Doctor{
			Name:                  req.Name,
			Surname:               req.Surname,
			Email:                 email,
			Password:              string(hashedPassword),
			ProfessionalStatement: req.ProfessionalStatement,
		}
		err = u.doctorRepo.Create(ctx, doctor)
		identity = doctor.Identity()
	case entity.RolePatient:
		if req.Address == nil || req.PhoneNumber == "" {
			return ErrBadObjectStructure
		}
		patient := &entity.Patient{
			Name:        req.Name,
			Surname:     req.Surname,
			Email:       email,
			Password:    string(hashedPassword),
			PhoneNumber: req.PhoneNumber,
			Address:     converter.AddressFromRequest(req.Address),
		}
		err = u.patientRepo.Create(ctx, patient)
		identity = patient.Identity()
	default:
		return ErrBadObjectStructure
	}
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create %s account: %+v", req.Role, err)
		return err
	}

	u.auditService.LogCreate(ctx, identity, entity.AuditActionAccountRegister, string(identity.Role), identity.UserID.String(), map[string]interface{}{
		"email": email,
	})
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPair, error) {
	account, err := u.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	identity := account.Identity()

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(identity)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(identity)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, jwt.AccessToken, identity.UserID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.tokenStore.Store(ctx, jwt.RefreshToken, identity.UserID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh issues a new access token carrying the refresh token's identity.
// The refresh token itself is not rotated.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrMissingRefreshToken
	}

	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrRefreshTokenExpired
	}

	exists, err := u.tokenStore.Exists(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return "", err
	}
	if !exists {
		return "", ErrRefreshTokenExpired
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.Identity())
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return "", err
	}
	if err := u.tokenStore.Store(ctx, jwt.AccessToken, claims.UserID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return "", err
	}

	return accessToken, nil
}

// Logout revokes the current access token and, when given, the caller's refresh token
func (u *authUsecase) Logout(ctx context.Context, actor entity.Identity, accessTokenID, refreshToken string) error {
	if err := u.tokenStore.Revoke(ctx, jwt.AccessToken, actor.UserID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil || claims.UserID != actor.UserID {
		return nil
	}
	if err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, actor.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, actor entity.Identity) (*dto.AccountResponse, error) {
	switch actor.Role {
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByID(ctx, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find doctor by ID: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrUserNotFound
		}
		return converter.DoctorToAccountResponse(doctor), nil
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByID(ctx, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find patient by ID: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrUserNotFound
		}
		return converter.PatientToAccountResponse(patient), nil
	}
	return nil, ErrUserNotFound
}

func (u *authUsecase) UpdateCurrentUser(ctx context.Context, actor entity.Identity, req *dto.UpdateAccountRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return err
	}
	if existing != nil && existing.Identity().UserID != actor.UserID {
		return ErrEmailAlreadyExists
	}

	switch actor.Role {
	case entity.RoleDoctor:
		err = u.doctorRepo.UpdateProfile(ctx, &entity.Doctor{
			ID:                    actor.UserID,
			Name:                  req.Name,
			Surname:               req.Surname,
			Email:                 email,
			ProfessionalStatement: req.ProfessionalStatement,
		})
	case entity.RolePatient:
		if req.PhoneNumber == "" || req.Address == nil {
			return ErrBadObjectStructure
		}
		err = u.patientRepo.UpdateProfile(ctx, &entity.Patient{
			ID:          actor.UserID,
			Name:        req.Name,
			Surname:     req.Surname,
			Email:       email,
			PhoneNumber: req.PhoneNumber,
			Address:     converter.AddressFromRequest(req.Address),
		})
	default:
		return ErrUserNotFound
	}
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update %s %s: %+v", actor.Role, actor.UserID, err)
		return err
	}
	return nil
}

// DeleteCurrentUser removes the account, its photo and every live token
func (u *authUsecase) DeleteCurrentUser(ctx context.Context, actor entity.Identity) error {
	account, err := u.accountRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return err
	}
	if account == nil {
		return ErrUserNotFound
	}

	switch account.Identity().Role {
	case entity.RoleDoctor:
		err = u.doctorRepo.Delete(ctx, actor.UserID)
	case entity.RolePatient:
		err = u.patientRepo.Delete(ctx, actor.UserID)
	}
	if err != nil {
		u.log.Warnf("Failed to delete account %s: %+v", actor.UserID, err)
		return err
	}

	u.removePhotoFile(account.PhotoPath())
	if err := u.tokenStore.RevokeAll(ctx, actor.UserID); err != nil {
		u.log.Warnf("Failed to revoke tokens of deleted account %s: %+v", actor.UserID, err)
	}

	u.auditService.LogDelete(ctx, actor, entity.AuditActionAccountDelete, string(actor.Role), actor.UserID.String(), map[string]interface{}{
		"email": account.AccountEmail(),
	})
	return nil
}

func (u *authUsecase) UpdatePassword(ctx context.Context, actor entity.Identity, req *dto.UpdatePasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordsMustMatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	switch actor.Role {
	case entity.RoleDoctor:
		err = u.doctorRepo.UpdatePassword(ctx, actor.UserID, string(hashedPassword))
	case entity.RolePatient:
		err = u.patientRepo.UpdatePassword(ctx, actor.UserID, string(hashedPassword))
	default:
		return ErrUserNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to update password of %s: %+v", actor.UserID, err)
		return err
	}
	return nil
}

func (u *authUsecase) UploadPhoto(ctx context.Context, actor entity.Identity, file io.Reader) error {
	account, err := u.accountRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return err
	}
	if account == nil {
		return ErrUserNotFound
	}

	path, err := u.photoStorage.Save(file)
	if err != nil {
		return err
	}

	if err := u.setPhoto(ctx, account.Identity(), &path); err != nil {
		u.removePhotoFile(&path)
		return err
	}

	u.removePhotoFile(account.PhotoPath())
	return nil
}

func (u *authUsecase) RemovePhoto(ctx context.Context, actor entity.Identity) error {
	account, err := u.accountRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return err
	}
	if account == nil {
		return ErrUserNotFound
	}
	if account.PhotoPath() == nil {
		return ErrNoPhoto
	}

	if err := u.setPhoto(ctx, account.Identity(), nil); err != nil {
		return err
	}
	u.removePhotoFile(account.PhotoPath())
	return nil
}

func (u *authUsecase) setPhoto(ctx context.Context, identity entity.Identity, path *string) error {
	var err error
	switch identity.Role {
	case entity.RoleDoctor:
		err = u.doctorRepo.UpdatePhoto(ctx, identity.UserID, path)
	case entity.RolePatient:
		err = u.patientRepo.UpdatePhoto(ctx, identity.UserID, path)
	}
	if err != nil {
		u.log.Warnf("Failed to update photo of %s: %+v", identity.UserID, err)
	}
	return err
}

// removePhotoFile deletes a stored photo; failures are only logged
func (u *authUsecase) removePhotoFile(path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := u.photoStorage.Remove(*path); err != nil {
		u.log.Warnf("Failed to remove photo file %s: %+v", *path, err)
	}
}
