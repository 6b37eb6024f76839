// Package decision drives which follow-up questions the intake asks.
package decision

// Results is the terminal node id.
const Results = "results"

// DefaultEdge labels a node's unconditional next node.
const DefaultEdge = "default"

// InputType is how a question is answered.
type InputType string

const (
	InputCheckbox InputType = "checkbox"
	InputSelect   InputType = "select"
	InputRadio    InputType = "radio"
	InputRange    InputType = "range"
	InputText     InputType = "text"
)

// Branch routes to Targets when Symptom was selected.
type Branch struct {
	Symptom string   `json:"symptom"`
	Targets []string `json:"targets"`
}

// Node is one question in the questionnaire graph.
type Node struct {
	ID          string            `json:"id"`
	Question    string            `json:"question"`
	Type        InputType         `json:"type"`
	Options     []string          `json:"options,omitempty"`
	Next        map[string]string `json:"next"`
	Conditional []Branch          `json:"conditionalSymptoms,omitempty"`
}

// Answers carries the selections that influence routing.
type Answers struct {
	Symptoms []string `json:"symptoms"`
}

// Tree is an immutable questionnaire graph. Nodes keep declaration order.
type Tree struct {
	nodes map[string]*Node
	order []string
}

// NewTree builds a tree from nodes in declaration order. A later node with
// a repeated id replaces the earlier one in place.
func NewTree(nodes ...Node) *Tree {
	t := &Tree{nodes: make(map[string]*Node, len(nodes))}
	for i := range nodes {
		n := nodes[i]
		if _, exists := t.nodes[n.ID]; !exists {
			t.order = append(t.order, n.ID)
		}
		t.nodes[n.ID] = &n
	}
	return t
}

// Node returns the node with the given id.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in declaration order.
func (t *Tree) Nodes() []Node {
	out := make([]Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.nodes[id])
	}
	return out
}

// NextNode returns the node to show after currentID. The first declared
// conditional branch whose symptom was selected wins, then the default
// edge, then Results. Unknown nodes and nodes without edges lead to Results.
func (t *Tree) NextNode(currentID string, answers Answers) string {
	n, ok := t.nodes[currentID]
	if !ok || len(n.Next) == 0 {
		return Results
	}

	if len(n.Conditional) > 0 && len(answers.Symptoms) > 0 {
		selected := make(map[string]struct{}, len(answers.Symptoms))
		for _, s := range answers.Symptoms {
			selected[s] = struct{}{}
		}
		for _, b := range n.Conditional {
			if _, hit := selected[b.Symptom]; hit && len(b.Targets) > 0 {
				return b.Targets[0]
			}
		}
	}

	if next, ok := n.Next[DefaultEdge]; ok && next != "" {
		return next
	}
	return Results
}

var (
	entryQuestions   = []string{"main_symptoms", "duration", "severity"}
	closingQuestions = []string{"medical_history", "medications", Results}
)

// RelevantQuestions lists the question ids to ask for the selected symptoms:
// the entry questions, every conditional target of any selected symptom
// across all nodes, then the closing questions. Duplicates keep their first
// position.
func (t *Tree) RelevantQuestions(selectedSymptomIDs []string) []string {
	questions := append([]string(nil), entryQuestions...)

	for _, symptomID := range selectedSymptomIDs {
		for _, id := range t.order {
			for _, b := range t.nodes[id].Conditional {
				if b.Symptom == symptomID {
					questions = append(questions, b.Targets...)
				}
			}
		}
	}

	questions = append(questions, closingQuestions...)
	return dedupe(questions)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
