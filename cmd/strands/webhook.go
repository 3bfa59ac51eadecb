package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thespudmore/NYT-Strands-Solver/internal/board"
	"github.com/thespudmore/NYT-Strands-Solver/internal/enumerator"
	"github.com/thespudmore/NYT-Strands-Solver/internal/session"
)

// enumerateRequest decodes the query-string trigger for operation 2 in
// spec §6 (enumerate_words_from) over HTTP, the out-of-scope UI's only
// contact point with the core (spec §1: "Grid editing UI ... specified
// only at their interface to the core").
type enumerateRequest struct {
	StartRow int `schema:"start_row,required"`
	StartCol int `schema:"start_col,required"`
	MinLen   int `schema:"min_len"`
	MaxLen   int `schema:"max_len"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

var (
	serveAddr      string
	serveGridPath  string
	serveWordsPath string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the enumerator over a small cross-origin HTTP endpoint",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVarP(&serveGridPath, "grid", "g", "", "path to a grid file, one row per line (required)")
	serveCmd.Flags().StringVarP(&serveWordsPath, "words", "w", "", "path to a newline-delimited word list (required)")
	_ = serveCmd.MarkFlagRequired("grid")
	_ = serveCmd.MarkFlagRequired("words")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(serveGridPath)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(serveWordsPath)
	if err != nil {
		return err
	}
	sess := session.New(g, dict)

	mux := http.NewServeMux()
	mux.HandleFunc("/enumerate", handleEnumerate(sess))

	handler := corsMiddleware()(mux)

	log.WithField("addr", serveAddr).Info("serving enumerate endpoint")
	return http.ListenAndServe(serveAddr, handler)
}

func handleEnumerate(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enumerateRequest
		if err := decoder.Decode(&req, r.URL.Query()); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.MinLen == 0 {
			req.MinLen = enumerator.DefaultMinLen
		}
		if req.MaxLen == 0 {
			req.MaxLen = enumerator.DefaultMaxLen
		}

		start := board.Cell{Row: req.StartRow, Col: req.StartCol}
		candidates := sess.EnumerateFromCell(start, enumerator.Options{MinLen: req.MinLen, MaxLen: req.MaxLen})

		log.WithFields(logrus.Fields{"start": start, "found": len(candidates)}).Debug("serve: enumerate request")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(candidates)
	}
}

// corsMiddleware allows a browser-hosted grid UI (out of scope per spec §1)
// to call the core cross-origin, the same way the teacher's sibling repo
// wires github.com/rs/cors around its mux.
func corsMiddleware() func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   []string{http.MethodGet},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
	return cors.New(options).Handler
}
