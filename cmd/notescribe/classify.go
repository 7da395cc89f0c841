package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/omrkit/notescribe/internal/dataset"
	"github.com/omrkit/notescribe/internal/knn"
	"github.com/omrkit/notescribe/internal/sampling"
	"github.com/omrkit/notescribe/internal/score"
)

var classifyFlags struct {
	in       string
	margin   int
	rows     int
	cols     int
	k        int
	testFrac float64
	seed     int64
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Train and evaluate a nearest-neighbor note classifier",
	Long: `Builds the note sample set from a corpus, balances the two classes,
splits into train and test portions, fits a k-nearest-neighbor model on the
training portion, and prints an evaluation report for the test portion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := score.LoadDir(classifyFlags.in)
		if err != nil {
			return err
		}
		log.Printf("loaded %d documents from %s", len(docs), classifyFlags.in)

		opts := dataset.Options{
			Margin: classifyFlags.margin,
			Rows:   classifyFlags.rows,
			Cols:   classifyFlags.cols,
		}
		res, err := dataset.Build(docs, opts)
		if err != nil {
			return err
		}
		if res.Skipped > 0 {
			log.Printf("skipped %d malformed documents", res.Skipped)
		}
		log.Printf("extracted %d quarter and %d half notes", len(res.Quarter), len(res.Half))

		rng := rand.New(rand.NewSource(classifyFlags.seed))
		quarter, half := sampling.Balance(res.Quarter, res.Half, rng)
		all := append(append([]dataset.Sample(nil), quarter...), half...)
		train, test, err := sampling.TrainTestSplit(all, classifyFlags.testFrac, rng)
		if err != nil {
			return err
		}
		log.Printf("balanced to %d per class; %d train / %d test", len(quarter), len(train), len(test))

		clf, err := knn.New(classifyFlags.k)
		if err != nil {
			return err
		}
		trainX, trainY := dataset.Matrix(train)
		if err := clf.Fit(trainX, trainY); err != nil {
			return err
		}

		testX, testY := dataset.Matrix(test)
		eval, err := knn.Evaluate(clf, testX, testY)
		if err != nil {
			return err
		}
		fmt.Print(eval.Report(dataset.ClassNames))
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFlags.in, "in", "", "corpus directory of document JSON files")
	classifyCmd.Flags().IntVar(&classifyFlags.margin, "margin", dataset.DefaultOptions.Margin, "blank border around each composite, in pixels")
	classifyCmd.Flags().IntVar(&classifyFlags.rows, "rows", dataset.DefaultOptions.Rows, "normalized raster height")
	classifyCmd.Flags().IntVar(&classifyFlags.cols, "cols", dataset.DefaultOptions.Cols, "normalized raster width")
	classifyCmd.Flags().IntVar(&classifyFlags.k, "k", 5, "number of neighbors")
	classifyCmd.Flags().Float64Var(&classifyFlags.testFrac, "test-frac", 0.25, "fraction of samples held out for evaluation")
	classifyCmd.Flags().Int64Var(&classifyFlags.seed, "seed", 42, "random seed for balancing and splitting")
	_ = classifyCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(classifyCmd)
}
