package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/service"
	"github.com/slms-platform/erp-server-go-authz/internal/usecase"
)

// DenialPublisher は拒否イベントの転送先（監査シンク）のインターフェース。
type DenialPublisher interface {
	Publish(ctx context.Context, event *model.DenialEvent) error
}

// DecisionRecorder は判定結果のメトリクス記録インターフェース。
type DecisionRecorder interface {
	RecordDecision(allowed bool, reason string)
}

// PermissionGuard は API ルートのパーミッションゲート。
//
// リクエストごとにプリンシパルのパーミッションを解決し（キャッシュしない）、
// メニューフィルタリングと同一の判定（service.CanAccess）で可否を決める。
// 拒否レスポンスは不足キーを開示しない統一フォーマットを返す。
// 解決の失敗は常に拒否として扱う（fail-closed）。
type PermissionGuard struct {
	checkUC  *usecase.CheckAccessUseCase
	producer DenialPublisher
	metrics  DecisionRecorder
	logger   *slog.Logger

	mu         sync.Mutex
	referenced map[catalog.Key]struct{}
}

// NewPermissionGuard は新しい PermissionGuard を作成する。
// producer / metrics は nil 可（転送・計測なしで動作する）。
func NewPermissionGuard(checkUC *usecase.CheckAccessUseCase, producer DenialPublisher, metrics DecisionRecorder, logger *slog.Logger) *PermissionGuard {
	return &PermissionGuard{
		checkUC:    checkUC,
		producer:   producer,
		metrics:    metrics,
		logger:     logger,
		referenced: make(map[catalog.Key]struct{}),
	}
}

// RequireAll は指定キーすべての保持を要求するミドルウェアを返す。
func (g *PermissionGuard) RequireAll(keys ...catalog.Key) gin.HandlerFunc {
	return g.require(service.ModeAllOf, keys)
}

// RequireAny は指定キーのいずれか 1 つの保持を要求するミドルウェアを返す。
func (g *PermissionGuard) RequireAny(keys ...catalog.Key) gin.HandlerFunc {
	return g.require(service.ModeAnyOf, keys)
}

func (g *PermissionGuard) require(mode service.Mode, keys []catalog.Key) gin.HandlerFunc {
	g.register(keys)

	return func(c *gin.Context) {
		principalID, ok := GetPrincipalID(c)
		if !ok {
			g.record(model.DeniedUnauthenticated())
			g.forwardDenial(c, "", keys, mode, model.ReasonUnauthenticated)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "ERP_AUTHZ_UNAUTHENTICATED",
				"message": "認証が必要です",
			})
			return
		}

		output, err := g.checkUC.Execute(c.Request.Context(), usecase.CheckAccessInput{
			PrincipalID: principalID,
			Required:    keys,
			Mode:        mode,
		})
		if err != nil {
			// 解決失敗は「権限なし」と同一の拒否に畳み込む。
			// 内部事情をレスポンスで区別できるとキー列挙の足掛かりになる。
			g.logger.Error("permission resolution failed, denying request",
				"principal_id", principalID, "path", c.FullPath(), "error", err)
			g.record(model.DeniedMissingPermission())
			g.forwardDenial(c, principalID, keys, mode, model.ReasonMissingPermission)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "ERP_AUTHZ_FORBIDDEN",
				"message": "この操作を実行する権限がありません",
			})
			return
		}

		g.record(output.Decision)
		if !output.Decision.Allowed {
			g.forwardDenial(c, principalID, keys, mode, output.Decision.Reason)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "ERP_AUTHZ_FORBIDDEN",
				"message": "この操作を実行する権限がありません",
			})
			return
		}

		c.Next()
	}
}

// register はガードが参照するキーを登録簿に記録する。
func (g *PermissionGuard) register(keys []catalog.Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, k := range keys {
		g.referenced[k] = struct{}{}
	}
}

// ReferencedKeys はこれまでにガードへ渡された全キーをソート済みで返す。
func (g *PermissionGuard) ReferencedKeys() []catalog.Key {
	g.mu.Lock()
	defer g.mu.Unlock()
	keys := make([]catalog.Key, 0, len(g.referenced))
	for k := range g.referenced {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ValidateReferencedKeys はガードが参照した全キーのカタログ登録を検証する。
// 全ルート登録後・Listen 前に呼び出し、失敗時は起動を中止すること。
func (g *PermissionGuard) ValidateReferencedKeys() error {
	for _, k := range g.ReferencedKeys() {
		if !catalog.Contains(k) {
			return fmt.Errorf("route guard references unregistered permission key %q", k)
		}
	}
	return nil
}

// record は判定結果をメトリクスに記録する。
func (g *PermissionGuard) record(d model.AccessDecision) {
	if g.metrics != nil {
		g.metrics.RecordDecision(d.Allowed, string(d.Reason))
	}
}

// forwardDenial は拒否イベントを監査シンクへ転送する。
// 転送失敗はログに留め、拒否レスポンス自体は妨げない。
func (g *PermissionGuard) forwardDenial(c *gin.Context, principalID string, keys []catalog.Key, mode service.Mode, reason model.DecisionReason) {
	if g.producer == nil {
		return
	}

	event := &model.DenialEvent{
		ID:          uuid.New().String(),
		PrincipalID: principalID,
		Required:    keys,
		Mode:        string(mode),
		Reason:      reason,
		Path:        c.Request.URL.Path,
		Method:      c.Request.Method,
		OccurredAt:  time.Now().UTC(),
	}

	if err := g.producer.Publish(c.Request.Context(), event); err != nil {
		g.logger.Warn("failed to forward denial event", "event_id", event.ID, "error", err)
	}
}
