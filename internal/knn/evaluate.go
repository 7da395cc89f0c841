package knn

import (
	"fmt"
	"sort"
	"strings"
)

// ClassMetrics holds per-class evaluation figures.
type ClassMetrics struct {
	Label     int     `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Evaluation summarizes classifier performance on a labeled set.
type Evaluation struct {
	// Accuracy is the fraction of correctly predicted samples.
	Accuracy float64 `json:"accuracy"`

	// Total is the number of evaluated samples.
	Total int `json:"total"`

	// Correct is the number of correctly predicted samples.
	Correct int `json:"correct"`

	// PerClass holds metrics for each label, ordered by label.
	PerClass []ClassMetrics `json:"per_class"`

	// Confusion maps true label -> predicted label -> count.
	Confusion map[int]map[int]int `json:"confusion"`
}

// Evaluate predicts every row of x and compares against the true labels.
func Evaluate(c *Classifier, x [][]float64, labels []int) (*Evaluation, error) {
	if len(x) != len(labels) {
		return nil, fmt.Errorf("knn: %d vectors but %d labels", len(x), len(labels))
	}
	predicted, err := c.PredictBatch(x)
	if err != nil {
		return nil, err
	}

	confusion := make(map[int]map[int]int)
	correct := 0
	for i, truth := range labels {
		row := confusion[truth]
		if row == nil {
			row = make(map[int]int)
			confusion[truth] = row
		}
		row[predicted[i]]++
		if predicted[i] == truth {
			correct++
		}
	}

	labelSet := make(map[int]struct{})
	for _, l := range labels {
		labelSet[l] = struct{}{}
	}
	for _, p := range predicted {
		labelSet[p] = struct{}{}
	}
	ordered := make([]int, 0, len(labelSet))
	for l := range labelSet {
		ordered = append(ordered, l)
	}
	sort.Ints(ordered)

	perClass := make([]ClassMetrics, 0, len(ordered))
	for _, label := range ordered {
		tp, fp, fn := 0, 0, 0
		for truth, row := range confusion {
			for pred, n := range row {
				switch {
				case truth == label && pred == label:
					tp += n
				case truth != label && pred == label:
					fp += n
				case truth == label && pred != label:
					fn += n
				}
			}
		}
		m := ClassMetrics{Label: label, Support: tp + fn}
		if tp+fp > 0 {
			m.Precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			m.Recall = float64(tp) / float64(tp+fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		perClass = append(perClass, m)
	}

	eval := &Evaluation{
		Total:     len(labels),
		Correct:   correct,
		PerClass:  perClass,
		Confusion: confusion,
	}
	if eval.Total > 0 {
		eval.Accuracy = float64(correct) / float64(eval.Total)
	}
	return eval, nil
}

// Report renders the evaluation as a plain-text table. Class names for
// labels come from the names map; labels without a name print numerically.
func (e *Evaluation) Report(names map[int]string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "accuracy: %.4f (%d/%d)\n\n", e.Accuracy, e.Correct, e.Total)
	fmt.Fprintf(&sb, "%-16s %9s %9s %9s %9s\n", "class", "precision", "recall", "f1", "support")
	for _, m := range e.PerClass {
		name, ok := names[m.Label]
		if !ok {
			name = fmt.Sprintf("%d", m.Label)
		}
		fmt.Fprintf(&sb, "%-16s %9.4f %9.4f %9.4f %9d\n", name, m.Precision, m.Recall, m.F1, m.Support)
	}
	return sb.String()
}
