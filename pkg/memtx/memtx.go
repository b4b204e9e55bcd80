package memtx

import (
	"context"
	"sync"
)

// TransactionManager сериализует критические секции над in-memory хранилищем.
// Проверка вместимости слота и создание сессии должны выполняться атомарно:
// HTTP-обработчики выполняются конкурентно, и без критической секции две
// параллельные брони могут пройти проверку вместимости одновременно.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый экземпляр менеджера
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn внутри критической секции
// Контекст проверяется до входа в секцию, чтобы не выполнять работу по отмененному запросу
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
