package storage

import (
	"encoding/json"

	"github.com/Joeseb100/realprops/models"

	"gorm.io/gorm"
)

// AuditRecorder persists admin mutation trails. Recording is best-effort:
// a failed audit write never fails the mutation it describes.
type AuditRecorder struct {
	db *gorm.DB
}

func NewAuditRecorder(db *gorm.DB) *AuditRecorder {
	return &AuditRecorder{db: db}
}

func (a *AuditRecorder) Record(adminID uint, action, resourceType string, resourceID uint, before, after interface{}, ip string) {
	var beforeStr, afterStr string
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			beforeStr = string(b)
		}
	}
	if after != nil {
		if b, err := json.Marshal(after); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		AdminID:      adminID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeJSON:   beforeStr,
		AfterJSON:    afterStr,
		IPAddress:    ip,
	}
	a.db.Create(&entry)
}
