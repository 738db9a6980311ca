package usecase

import "errors"

var (
	// ErrPrincipalRequired はプリンシパル ID が空の場合のエラー。
	ErrPrincipalRequired = errors.New("principal id is required")

	// ErrResolutionFailed はパーミッション解決の I/O が失敗した場合のエラー。
	// 呼び出し側は必ず拒否（fail-closed）として扱うこと。
	ErrResolutionFailed = errors.New("permission resolution failed")

	// ErrUnknownPermissionKey はカタログ未登録のキーが要求された場合のエラー。
	ErrUnknownPermissionKey = errors.New("unknown permission key")

	// ErrInvalidMode は未知の判定モードが指定された場合のエラー。
	ErrInvalidMode = errors.New("invalid evaluation mode")
)
