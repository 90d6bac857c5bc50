package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/logging"
	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

const appraisalBucket = "takster"

// documentLink issues a signed, one-hour download link for the vehicle's
// appraisal report.
func (h *Handlers) documentLink(w http.ResponseWriter, r *http.Request) {
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		respondError(w, http.StatusBadRequest, constants.MsgMissingVIN)
		return
	}

	file := vin + "_tuv_report.pdf"
	token, err := h.deps.Services.DocSigner.SignDownload(appraisalBucket, file, time.Hour)
	if err != nil {
		logging.Error("Failed to sign document link", "vin", vin, "error", err.Error())
		respondError(w, http.StatusInternalServerError, constants.MsgDocumentLinkFailed)
		return
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	signedURL := fmt.Sprintf("%s://%s/files/download?token=%s", scheme, r.Host, token)

	respondJSON(w, http.StatusOK, dtos.SignedURLResponse{SignedURL: signedURL})
}

// DownloadDocumentHandler validates a signed link and serves the document
// from the local document store.
func DownloadDocumentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			respondError(w, http.StatusBadRequest, constants.MsgInvalidRequest)
			return
		}

		doc, err := deps.Services.DocSigner.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusForbidden, constants.MsgInvalidRequest)
			return
		}

		root := os.Getenv("DOCUMENTS_DIR")
		if root == "" {
			root = "/var/lib/vinlookup/documents"
		}

		// The token only ever carries names this service signed, but keep
		// path traversal out regardless.
		path := filepath.Join(root, doc.Bucket, filepath.Base(doc.File))
		http.ServeFile(w, r, path)
	}
}
