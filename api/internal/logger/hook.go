package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ qua channel có buffer: Fire không block,
// một goroutine riêng format và ghi entry vào các writer. Channel đầy thì
// entry bị bỏ qua thay vì block request handling.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHookWithWriters tạo async hook ghi vào nhiều writer
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log level mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block khi channel đầy
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi trực tiếp, bỏ qua lỗi ghi
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy: bỏ entry để không block. Không log tại đây
		// vì sẽ tạo vòng lặp.
	}
	return nil
}

// processEntries format và ghi entry trong goroutine riêng. Có recover
// để panic trong goroutine logger không làm chết server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			data, err := h.format(entry)
			if err != nil {
				return
			}
			for _, writer := range h.writers {
				if _, err := writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// format chuyển entry thành bytes bằng formatter của logger gốc
func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng hook và đợi các entry còn lại được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
