package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashureev/symcheck/internal/catalog"
	"github.com/ashureev/symcheck/internal/decision"
	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/scoring"
	"github.com/ashureev/symcheck/internal/validation"
)

// ListSymptoms returns the symptom catalog, optionally narrowed to one body
// system with ?system=.
func (h *Handler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	system := r.URL.Query().Get("system")
	if system == "" {
		JSON(w, http.StatusOK, catalog.Symptoms())
		return
	}

	list := catalog.SymptomsBySystem()[system]
	if list == nil {
		list = []domain.Symptom{}
	}
	JSON(w, http.StatusOK, list)
}

// GetSymptom returns one symptom.
func (h *Handler) GetSymptom(w http.ResponseWriter, r *http.Request) {
	s, ok := catalog.SymptomByID(chi.URLParam(r, "id"))
	if !ok {
		Error(w, http.StatusNotFound, "symptom not found")
		return
	}
	JSON(w, http.StatusOK, s)
}

// ListConditions returns the condition catalog.
func (h *Handler) ListConditions(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, catalog.Conditions())
}

// GetCondition returns one condition.
func (h *Handler) GetCondition(w http.ResponseWriter, r *http.Request) {
	c, ok := catalog.ConditionByID(chi.URLParam(r, "id"))
	if !ok {
		Error(w, http.StatusNotFound, "condition not found")
		return
	}
	JSON(w, http.StatusOK, c)
}

type predictRequest struct {
	Symptoms []string `json:"symptoms"`
	Age      *int     `json:"age" validate:"required,min=0,max=120"`
	Gender   string   `json:"gender"`
}

// Predict scores an ad-hoc symptom list without touching any session.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err, "failed to predict conditions")
		return
	}
	if err := validation.Struct("", req); err != nil {
		respondError(w, r, err, "failed to predict conditions")
		return
	}

	res, err := scoring.PredictConditions(req.Symptoms, *req.Age, req.Gender)
	if err != nil {
		respondError(w, r, err, "failed to predict conditions")
		return
	}
	JSON(w, http.StatusOK, res)
}

// ListNodes returns the questionnaire in declaration order.
func (h *Handler) ListNodes(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, decision.Default().Nodes())
}

// GetNode returns one questionnaire node.
func (h *Handler) GetNode(w http.ResponseWriter, r *http.Request) {
	n, ok := decision.Default().Node(chi.URLParam(r, "nodeId"))
	if !ok {
		Error(w, http.StatusNotFound, "node not found")
		return
	}
	JSON(w, http.StatusOK, n)
}

// NextNode resolves the node after nodeId for ?symptoms=a,b.
func (h *Handler) NextNode(w http.ResponseWriter, r *http.Request) {
	answers := decision.Answers{Symptoms: splitList(r.URL.Query().Get("symptoms"))}
	JSON(w, http.StatusOK, map[string]string{
		"next": decision.NextNode(chi.URLParam(r, "nodeId"), answers),
	})
}

// RelevantQuestions lists the question ids for ?symptoms=a,b.
func (h *Handler) RelevantQuestions(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string][]string{
		"questions": decision.RelevantQuestions(splitList(r.URL.Query().Get("symptoms"))),
	})
}
