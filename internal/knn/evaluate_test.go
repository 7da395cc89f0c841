package knn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedClassifier(t *testing.T) *Classifier {
	t.Helper()
	clf, err := New(1)
	require.NoError(t, err)
	x := [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
	y := []int{0, 0, 1, 1}
	require.NoError(t, clf.Fit(x, y))
	return clf
}

func TestEvaluate_PerfectSeparation(t *testing.T) {
	clf := fittedClassifier(t)

	testX := [][]float64{{0.2, 0.2}, {9.5, 10}, {0, 0.5}}
	testY := []int{0, 1, 0}

	eval, err := Evaluate(clf, testX, testY)
	require.NoError(t, err)

	assert.Equal(t, 3, eval.Total)
	assert.Equal(t, 3, eval.Correct)
	assert.InDelta(t, 1.0, eval.Accuracy, 1e-9)

	require.Len(t, eval.PerClass, 2)
	for _, m := range eval.PerClass {
		assert.InDelta(t, 1.0, m.Precision, 1e-9)
		assert.InDelta(t, 1.0, m.Recall, 1e-9)
		assert.InDelta(t, 1.0, m.F1, 1e-9)
	}
}

func TestEvaluate_Misclassification(t *testing.T) {
	clf := fittedClassifier(t)

	// Mislabel one sample on purpose: predicted 0, truth says 1.
	testX := [][]float64{{0, 0}, {0.5, 0.5}, {10, 10.5}}
	testY := []int{0, 1, 1}

	eval, err := Evaluate(clf, testX, testY)
	require.NoError(t, err)

	assert.Equal(t, 2, eval.Correct)
	assert.InDelta(t, 2.0/3.0, eval.Accuracy, 1e-9)
	assert.Equal(t, 1, eval.Confusion[1][0])
	assert.Equal(t, 1, eval.Confusion[1][1])
	assert.Equal(t, 1, eval.Confusion[0][0])

	// Class 0: 2 predicted, 1 true positive -> precision 0.5, recall 1.
	m0 := eval.PerClass[0]
	assert.Equal(t, 0, m0.Label)
	assert.InDelta(t, 0.5, m0.Precision, 1e-9)
	assert.InDelta(t, 1.0, m0.Recall, 1e-9)
	assert.Equal(t, 1, m0.Support)

	// Class 1: 1 predicted, 1 true positive -> precision 1, recall 0.5.
	m1 := eval.PerClass[1]
	assert.Equal(t, 1, m1.Label)
	assert.InDelta(t, 1.0, m1.Precision, 1e-9)
	assert.InDelta(t, 0.5, m1.Recall, 1e-9)
	assert.Equal(t, 2, m1.Support)
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	clf := fittedClassifier(t)
	_, err := Evaluate(clf, [][]float64{{0, 0}}, []int{0, 1})
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	clf := fittedClassifier(t)
	eval, err := Evaluate(clf, [][]float64{{0, 0}, {10, 10}}, []int{0, 1})
	require.NoError(t, err)

	report := eval.Report(map[int]string{0: "quarter", 1: "half"})
	assert.Contains(t, report, "accuracy: 1.0000 (2/2)")
	assert.Contains(t, report, "quarter")
	assert.Contains(t, report, "half")
	assert.True(t, strings.Contains(report, "precision"))
}
