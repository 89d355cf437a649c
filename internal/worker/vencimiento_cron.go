package worker

// vencimiento_cron.go
// Background goroutine that periodically flips still-pending debts whose due
// date already passed to estado='vencida' and enqueues a reminder email when
// the customer left an address. Overdue debts keep counting toward the
// credit exposure, so the flip never shrinks dinero_fiado.

import (
	"context"
	"fmt"
	"time"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/rs/zerolog/log"
)

const vencimientoTickInterval = 1 * time.Hour

// VencimientoCronConfig holds the dependencies for the due-date sweep.
type VencimientoCronConfig struct {
	FiadoRepo  repository.FiadoRepository
	Dispatcher *Dispatcher
}

// StartVencimientoCron launches the sweep goroutine. It respects the context
// for graceful shutdown and runs one sweep immediately at startup.
func StartVencimientoCron(ctx context.Context, cfg VencimientoCronConfig) {
	go func() {
		ticker := time.NewTicker(vencimientoTickInterval)
		defer ticker.Stop()

		log.Info().Msg("vencimiento_cron: started")
		processVencimientos(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("vencimiento_cron: shutting down")
				return
			case <-ticker.C:
				processVencimientos(ctx, cfg)
			}
		}
	}()
}

func processVencimientos(ctx context.Context, cfg VencimientoCronConfig) {
	now := time.Now()
	vencidas, err := cfg.FiadoRepo.ListVencidas(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("vencimiento_cron: failed to query overdue debts")
		return
	}
	if len(vencidas) == 0 {
		return
	}

	log.Info().Int("count", len(vencidas)).Msg("vencimiento_cron: marking overdue debts")

	for i := range vencidas {
		f := &vencidas[i]
		if err := cfg.FiadoRepo.UpdateEstado(ctx, f.ID, model.FiadaVencida); err != nil {
			log.Error().Err(err).Str("fiada_id", f.ID.String()).Msg("vencimiento_cron: failed to update estado")
			continue
		}

		if f.Cliente == nil || f.Cliente.Email == nil || *f.Cliente.Email == "" {
			continue
		}
		total := "?"
		numero := 0
		if f.Venta != nil {
			total = f.Venta.Total.StringFixed(2)
			numero = f.Venta.Numero
		}
		reminder := EmailJobPayload{
			ToEmail: *f.Cliente.Email,
			Subject: fmt.Sprintf("Recordatorio de deuda — Venta #%d", numero),
			Body: fmt.Sprintf(
				"Hola %s,\n\nTe recordamos que tu compra al fiado por $%s venció el %s.\nPor favor acercate al local para regularizarla.",
				f.Cliente.Nombre, total, f.FechaVencimiento.Format("02/01/2006")),
		}
		if err := cfg.Dispatcher.EnqueueEmail(ctx, reminder); err != nil {
			log.Warn().Err(err).Str("email", *f.Cliente.Email).Msg("vencimiento_cron: failed to enqueue reminder")
		}
	}
}
