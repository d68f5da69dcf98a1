package services

import (
	"encoding/json"

	"spreadscan/internal/logger"
	"spreadscan/internal/models"

	"gorm.io/gorm"
)

// Audit actions recorded by the handlers and the seeding CLI.
const (
	AuditActionImportSpreads = "import_spreads"
	AuditActionCreateSpread  = "create_spread"
	AuditActionRunScan       = "run_scan"
	AuditActionCreateFilter  = "create_filter"
	AuditActionDeleteFilter  = "delete_filter"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed so auditing
// never fails the operation being audited.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
