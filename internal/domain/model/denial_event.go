package model

import (
	"time"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
)

// DenialEvent はアクセス拒否イベントを表す。
// 監査シンクへの転送にのみ使用し、永続化は外部システムの責務。
type DenialEvent struct {
	ID          string         `json:"id"`
	PrincipalID string         `json:"principal_id"`
	Required    []catalog.Key  `json:"required"`
	Mode        string         `json:"mode"`
	Reason      DecisionReason `json:"reason"`
	Path        string         `json:"path"`
	Method      string         `json:"method"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
