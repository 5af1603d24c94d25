package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Address is embedded into clinic, patient and appointment rows
type Address struct {
	Street     string `gorm:"type:varchar(255);not null" json:"street"`
	City       string `gorm:"type:varchar(100);not null" json:"city"`
	PostalCode string `gorm:"type:char(6);not null" json:"postalCode"`
}

// WorkingTime is a single weekday opening window, times as HH:MM
type WorkingTime struct {
	WeekDay   string `json:"weekDay"`
	StartTime string `json:"startTime"`
	StopTime  string `json:"stopTime"`
}

// WorkingTimes is stored as JSONB
type WorkingTimes []WorkingTime

// Value returns json value, implement driver.Valuer interface
func (w WorkingTimes) Value() (driver.Value, error) {
	if w == nil {
		return "[]", nil
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan scan value into WorkingTimes, implements sql.Scanner interface
func (w *WorkingTimes) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []WorkingTime
	err := json.Unmarshal(bytes, &result)
	*w = WorkingTimes(result)
	return err
}
