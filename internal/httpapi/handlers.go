package httpapi

import (
	"io"
	"net/http"
	"net/url"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minibook-dev/minibook/internal/book"
	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/importer"
	"github.com/minibook-dev/minibook/internal/logger"
	"github.com/minibook-dev/minibook/internal/model"
)

// postBook derives a full book from the posted transactions.
func (s *Server) postBook(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.decodeTransactions(w, r)
	if !ok {
		return
	}
	runID, b, err := s.derive(r, raw)
	if err != nil {
		status, resp := mapDeriveError(err)
		writeErr(w, status, resp)
		return
	}
	w.Header().Set("X-Run-ID", runID)
	toJSON(w, http.StatusOK, toBookResponse(runID, b))
}

// postLedger derives a book and returns the ledger of one account. An
// account no transaction touched comes back empty with known=false.
func (s *Server) postLedger(w http.ResponseWriter, r *http.Request) {
	name, err := accountParam(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, errorResponse{Error: "invalid account name", Code: "invalid_account"})
		return
	}
	raw, ok := s.decodeTransactions(w, r)
	if !ok {
		return
	}
	runID, b, err := s.derive(r, raw)
	if err != nil {
		status, resp := mapDeriveError(err)
		writeErr(w, status, resp)
		return
	}

	resp := ledgerResponse{
		RunID:   runID,
		Account: name,
		Known:   b.HasAccount(name),
		Entries: toLedgerDTO(b.Ledger(name)),
		Balance: b.Balance(name),
	}
	if t, ok := b.Classification(name); ok {
		resp.Type = string(t)
	}
	w.Header().Set("X-Run-ID", runID)
	toJSON(w, http.StatusOK, resp)
}

// accountParam returns the decoded {account} segment. chi matches against
// RawPath when the path holds escapes like %2F, leaving the parameter
// encoded; otherwise it matches the already-decoded Path.
func accountParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "account")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

// getSample derives the built-in demo transactions.
func (s *Server) getSample(w http.ResponseWriter, r *http.Request) {
	runID, b, err := s.derive(r, book.SampleRaw())
	if err != nil {
		status, resp := mapDeriveError(err)
		writeErr(w, status, resp)
		return
	}
	w.Header().Set("X-Run-ID", runID)
	toJSON(w, http.StatusOK, toBookResponse(runID, b))
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	toJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decodeTransactions(w http.ResponseWriter, r *http.Request) ([]model.RawTransaction, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		badRequest(w, "reading body: "+err.Error())
		return nil, false
	}
	txns, err := importer.DecodeTransactions(data)
	if err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return nil, false
	}
	return importer.ToRaw(txns), true
}

// derive runs one derivation, logging and counting its outcome.
func (s *Server) derive(r *http.Request, raw []model.RawTransaction) (string, *book.Book, error) {
	runID := uuid.NewString()
	start := time.Now()
	b, err := book.DeriveRaw(raw, s.opts...)
	elapsed := time.Since(start)

	log := logger.FromContext(r.Context()).With().
		Str("run_id", runID).
		Int("transactions", len(raw)).
		Logger()
	if err != nil {
		kind := errs.Kind(err)
		if kind == "" {
			kind = "internal"
		}
		s.metrics.observeDerive(kind, elapsed)
		log.Warn().Err(err).Str("kind", kind).Msg("derivation failed")
		return runID, nil, err
	}
	s.metrics.observeDerive("ok", elapsed)
	log.Info().Dur("elapsed", elapsed).Int("accounts", len(b.Accounts())).Msg("derivation complete")
	return runID, b, nil
}
