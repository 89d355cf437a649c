package worker

// ticket_worker.go
// Processes ticket jobs from QueueTicket: generates the PDF receipt for a
// recorded sale and, when the customer left an email address, chains an
// email job with the PDF attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/infra"
	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TicketJobPayload is the job envelope sent to QueueTicket.
type TicketJobPayload struct {
	VentaID      string  `json:"venta_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

type TicketWorker struct {
	ventaRepo      repository.VentaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewTicketWorker(ventaRepo repository.VentaRepository, dispatcher *Dispatcher, pdfStoragePath string) *TicketWorker {
	return &TicketWorker{
		ventaRepo:      ventaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single ticket job:
//  1. Fetch the Venta (with line items and product names)
//  2. Generate the PDF ticket
//  3. Optionally enqueue an email job with the PDF attached
func (w *TicketWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload TicketJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("ticket_worker: invalid payload")
		return
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("ticket_worker: invalid venta_id")
		return
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		// The sale may have been deleted between enqueue and processing.
		log.Warn().Err(err).Str("venta_id", payload.VentaID).Msg("ticket_worker: venta not found")
		return
	}

	pdfPath, err := infra.GenerateTicketPDF(venta, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("ticket_worker: PDF generation failed")
		return
	}
	log.Info().Str("pdf", pdfPath).Str("venta_id", payload.VentaID).Msg("ticket_worker: PDF generated")

	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.ClienteEmail,
			Subject: fmt.Sprintf("Comprobante de compra — Venta #%d", venta.Numero),
			Body:    fmt.Sprintf("Adjunto encontrarás tu comprobante de compra.\nTotal: $%s", venta.Total.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.ClienteEmail).Msg("ticket_worker: failed to enqueue email")
		}
	}
}
