package seq

import "sync"

// Counter выдает строго возрастающие номера операций внутри одной комнаты.
// Значение переживает перезапуск: комната сохраняет его вместе с логом и восстанавливает через Restore.
type Counter struct {
	next uint64     // следующий номер, который будет выдан
	mu   sync.Mutex // мьютекс для потокобезопасности
}

// New создает счетчик, первый вызов Next которого вернет 1.
func New() *Counter {
	return &Counter{next: 1}
}

// Next возвращает следующий номер и сдвигает счетчик.
func (c *Counter) Next() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.next
	c.next++
	return n
}

// Peek возвращает номер, который будет выдан следующим, без изменения счетчика.
func (c *Counter) Peek() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.next
}

// Restore устанавливает счетчик после загрузки снимка.
// Счетчик никогда не откатывается назад, иначе номера могут повториться.
func (c *Counter) Restore(next uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if next > c.next {
		c.next = next
	}
}
