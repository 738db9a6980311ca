package model

// DecisionReason はアクセス判定の理由コード。
type DecisionReason string

const (
	// ReasonGranted は要求パーミッションを満たした場合。
	ReasonGranted DecisionReason = "granted"

	// ReasonMissingPermission はプリンシパルは解決できたが
	// 要求パーミッションを満たさなかった場合。
	ReasonMissingPermission DecisionReason = "missing_permission"

	// ReasonUnauthenticated はプリンシパルコンテキストが存在しない場合。
	ReasonUnauthenticated DecisionReason = "unauthenticated"
)

// AccessDecision はアクセス判定の結果。
// 例外ではなく構造化された値として呼び出し側に返す。
type AccessDecision struct {
	Allowed bool           `json:"allowed"`
	Reason  DecisionReason `json:"reason"`
}

// Granted は許可判定を返す。
func Granted() AccessDecision {
	return AccessDecision{Allowed: true, Reason: ReasonGranted}
}

// DeniedMissingPermission はパーミッション不足による拒否判定を返す。
func DeniedMissingPermission() AccessDecision {
	return AccessDecision{Allowed: false, Reason: ReasonMissingPermission}
}

// DeniedUnauthenticated は未認証による拒否判定を返す。
func DeniedUnauthenticated() AccessDecision {
	return AccessDecision{Allowed: false, Reason: ReasonUnauthenticated}
}
