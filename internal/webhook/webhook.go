package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/seclab/labstatus/internal/model"
)

// Notifier posts status changes to a chat webhook.
type Notifier struct {
	url    string
	client *http.Client
	log    *slog.Logger
}

func New(url string, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

type payload struct {
	Content string `json:"content"`
}

// Notify posts the announcement for s. Only 200 and 204 count as success.
func (n *Notifier) Notify(s model.Status) bool {
	if err := n.post(model.Announcement(s)); err != nil {
		n.log.Warn("webhook notify failed", "status", string(s), "err", err)
		return false
	}
	n.log.Info("webhook notified", "status", string(s))
	return true
}

func (n *Notifier) post(content string) error {
	b, err := json.Marshal(payload{Content: content})
	if err != nil {
		return fmt.Errorf("marshaling webhook body: %w", err)
	}
	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return fmt.Errorf("webhook error %d", resp.StatusCode)
	}
}
