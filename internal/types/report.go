package types

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"
)

// Report is a moderation complaint against a notebook. NotebookID is a plain
// reference without a foreign key constraint: a report may outlive the
// notebook it points at, and reads tolerate the missing referent.
type Report struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NotebookID uint      `gorm:"column:notebook_id;not null;index" json:"notebook_id"`
	UserID     *uint     `gorm:"column:user_id" json:"user_id"`
	Reason     string    `gorm:"column:reason;not null" json:"reason"`
	Status     string    `gorm:"column:status;not null;default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Report) TableName() string {
	return "report"
}
