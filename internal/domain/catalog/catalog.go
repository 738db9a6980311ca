package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Key は認可対象アクションを一意に識別するパーミッションキー。
// 形式は `<module>[:<submodule>]*:<action>`（例: accounting:journal:view）。
// ガード呼び出し側は必ず本パッケージの定数を使用すること。
// 文字列リテラルでの直接指定は起動時検証の対象外となるため禁止。
type Key string

// String は Key の文字列表現を返す。
func (k Key) String() string {
	return string(k)
}

// Module はキーの先頭ネームスペース（所属モジュール名）を返す。
func (k Key) Module() string {
	s := string(k)
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// segmentPattern は各セグメントの形式（小文字英数とアンダースコア）。
var segmentPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ListAll はカタログに登録された全パーミッションキーを宣言順で返す。
// 返り値はコピーであり、呼び出し側が変更しても内部状態に影響しない。
func ListAll() []Key {
	keys := make([]Key, len(allKeys))
	copy(keys, allKeys)
	return keys
}

// ByModule は先頭ネームスペースごとにグルーピングした全キーを返す。
func ByModule() map[string][]Key {
	grouped := make(map[string][]Key)
	for _, k := range allKeys {
		m := k.Module()
		grouped[m] = append(grouped[m], k)
	}
	return grouped
}

// Contains は指定キーがカタログに登録されているかを返す。
func Contains(k Key) bool {
	_, ok := keySet[k]
	return ok
}

// Validate はカタログ全体の整合性を検証する。
// 起動時に一度呼び出し、失敗した場合はプロセスを起動させないこと。
//   - 各キーが `<module>:...:<action>` 形式（2 セグメント以上）であること
//   - 文字列値に重複がないこと
func Validate() error {
	seen := make(map[Key]struct{}, len(allKeys))
	for _, k := range allKeys {
		if err := validateFormat(k); err != nil {
			return err
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate permission key in catalog: %s", k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// validateFormat はキー 1 件の形式を検証する。
func validateFormat(k Key) error {
	segments := strings.Split(string(k), ":")
	if len(segments) < 2 {
		return fmt.Errorf("permission key %q must have at least 2 segments", k)
	}
	for _, seg := range segments {
		if !segmentPattern.MatchString(seg) {
			return fmt.Errorf("permission key %q has malformed segment %q", k, seg)
		}
	}
	return nil
}

// keySet は Contains 用の逆引きインデックス。
var keySet = buildKeySet()

func buildKeySet() map[Key]struct{} {
	set := make(map[Key]struct{}, len(allKeys))
	for _, k := range allKeys {
		set[k] = struct{}{}
	}
	return set
}
