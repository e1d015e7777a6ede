// Package rewriter определяет клиент удаленного сервиса генерации текста.
package rewriter

import "context"

// Client перерабатывает текст на удаленном сервисе.
type Client interface {
	Rewrite(ctx context.Context, text, mode string) (string, error)
}
