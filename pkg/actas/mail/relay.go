package mail

import (
	"context"

	"github.com/mikepea/actas/pkg/actas/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Relay sends messages with whichever config is currently active
type Relay struct {
	db      *gorm.DB
	client  *Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewRelay creates a relay over client
func NewRelay(db *gorm.DB, client *Client, log *zap.Logger, m *metrics.Metrics) *Relay {
	if log == nil {
		log = zap.NewNop()
	}
	return &Relay{db: db, client: client, log: log.Named("mail"), metrics: m}
}

// Send resolves the active config, acquires a credential and sends msg
func (r *Relay) Send(ctx context.Context, msg Message) (err error) {
	defer func() { r.metrics.MailSent(err) }()

	cfg, err := ResolveActiveConfig(r.db, r.log)
	if err != nil {
		return err
	}
	cred, err := r.client.AcquireCredential(ctx, cfg)
	if err != nil {
		return err
	}
	if err = r.client.Send(ctx, cred, cfg, msg); err != nil {
		return err
	}
	r.log.Info("mail sent", zap.Uint("config_id", cfg.ID), zap.String("subject", msg.Subject))
	return nil
}
