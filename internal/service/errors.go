package service

import "errors"

// ValidationError 表示使用者輸入違反規則，Reason 可直接顯示給使用者
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var ErrSessionNotFound = errors.New("session not found")
