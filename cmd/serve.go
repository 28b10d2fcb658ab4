package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/cuthbertLab/meterspan/constants"
	"github.com/cuthbertLab/meterspan/db"
	"github.com/cuthbertLab/meterspan/midi"
	"github.com/cuthbertLab/meterspan/model"
	"github.com/cuthbertLab/meterspan/score"
)

var currentScore *score.Score

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serves overlap and metrical-position queries for one score",
	Long:  `Serves overlap and metrical-position queries for one score`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		serve(args[0])
	},
}

// LoadScore builds the served score from a midi file path. Exposed for
// the e2e tests.
func LoadScore(path string) error {
	mf, err := midi.ReadFile(path)
	if err != nil {
		return err
	}
	sc, err := score.Build(filepath.Base(path), mf)
	if err != nil {
		return err
	}
	currentScore = sc
	return nil
}

// SetScore swaps in an already-built score. Exposed for the e2e tests.
func SetScore(sc *score.Score) {
	currentScore = sc
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleOverlap(w http.ResponseWriter, r *http.Request) {
	var input model.OverlapRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.Stop < input.Start {
		writeError(w, 400, "stop must not precede start")
		return
	}

	spans := currentScore.Overlapping(input.Start, input.Stop)
	res := model.OverlapResponse{NumMatches: len(spans), Spans: make([]model.SpanResult, 0, len(spans))}
	for _, s := range spans {
		res.Spans = append(res.Spans, model.SpanResult{
			Start: s.Start, Stop: s.Stop, Note: s.Note, Track: s.Track,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleAddress(w http.ResponseWriter, r *http.Request) {
	offset, err := strconv.ParseFloat(r.URL.Query().Get("offset"), 64)
	if err != nil {
		writeError(w, 400, "offset query param must be a number")
		return
	}

	addr, err := currentScore.AddressAt(offset)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.AddressResponse{
		Offset:    offset,
		Bar:       addr.Bar,
		Address:   addr.Path,
		Signature: addr.Signature,
	})
}

func HandleOverview(w http.ResponseWriter, r *http.Request) {
	res := model.OverviewResponse{
		ID:       currentScore.ID.String(),
		Name:     currentScore.Name,
		NumSpans: currentScore.Tree.Len(),
		Duration: currentScore.Duration(),
		Meters:   currentScore.Meters,
	}
	if endpoint := constants.GetMetadataEndpoint(); endpoint != "" {
		metadatas := db.GetScoreMetadatas(endpoint, []string{currentScore.Name})
		if m, ok := metadatas[currentScore.Name]; ok {
			res.Metadata = &m
		}
	}
	json.NewEncoder(w).Encode(res)
}

func serve(path string) {
	if err := LoadScore(path); err != nil {
		panic("Could not load score: " + err.Error())
	}
	fmt.Printf("Serving %v (%v spans)\n", currentScore.Name, currentScore.Tree.Len())

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/overlap", HandleOverlap).Methods("POST")
	router.HandleFunc("/address", HandleAddress).Methods("GET")
	router.HandleFunc("/overview", HandleOverview).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
