// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Summarize the strength of a newline separated list of passwords",
		Long: "Evaluates every line of the input file and prints how many passwords fall in each score, " +
			"plus entropy percentiles. The passwords themselves are never printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return batchCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	batchCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Password list input file path, one password per line (required)")
	batchCmd.MarkFlagRequired("in-file")
	batchCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use. If omitted or less than 1, defaults to the number of logical processors of the machine.")

	rootCmd.AddCommand(batchCmd)
}

func batchCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	evaluator, err := newEvaluator(scorer, estimator)
	if err != nil {
		return err
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing password list file")
		}
	}(file)

	summary, err := runBatch(file, evaluator, threads)
	if err != nil {
		return err
	}

	return summary.Print(os.Stdout)
}

// Lines longer than this are counted but not evaluated.
const maxLineBytes = 1 << 20

type batchSummary struct {
	scorer    strength.Scorer
	counts    [strength.MaxScore + 1]uint64
	entropies []float64
	skipped   uint64
	tooLong   uint64
}

func (b *batchSummary) add(result strength.Result) {
	b.counts[result.Score]++
	b.entropies = append(b.entropies, result.Entropy)
}

func (b *batchSummary) Total() int {
	return len(b.entropies)
}

// Percentile uses the nearest rank method, entropies must be sorted.
func (b *batchSummary) Percentile(p float64) float64 {
	if len(b.entropies) == 0 {
		return 0
	}

	rank := int(math.Ceil(p/100*float64(len(b.entropies)))) - 1
	if rank < 0 {
		rank = 0
	}

	return b.entropies[rank]
}

func (b *batchSummary) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)
	total := b.Total()

	lines := []string{p.Sprintf("evaluated %d passwords with the %s scorer, %d empty lines skipped", total, b.scorer.Name(), b.skipped)}
	if b.tooLong > 0 {
		lines[0] += p.Sprintf(", %d lines over %d bytes skipped", b.tooLong, maxLineBytes)
	}
	if total == 0 {
		_, err := fmt.Fprintln(w, lines[0])
		return err
	}

	severities := b.scorer.Severities()
	for score, count := range b.counts {
		lines = append(lines, p.Sprintf("  %d %-12s %10d (%.2f%%)", score, severities.Lookup(score).Label, count, float64(count)*100/float64(total)))
	}
	lines = append(lines, fmt.Sprintf("entropy bits: min %.2f, p50 %.2f, p90 %.2f, max %.2f",
		b.entropies[0], b.Percentile(50), b.Percentile(90), b.entropies[total-1]))

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func runBatch(r io.Reader, evaluator *strength.Evaluator, parallelism int) (*batchSummary, error) {
	s := util.Stats()
	defer s()

	workers := parallelism
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	// Bounded thread pool, the queue holds at most two tasks per worker.
	tasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return nil, err
	}
	defer tasks.Close()

	summary := &batchSummary{scorer: evaluator.Scorer()}
	var mu sync.Mutex
	evaluate := func(password string) {
		result := evaluator.Evaluate(password).Result

		mu.Lock()
		defer mu.Unlock()
		summary.add(result)
	}

	log.Debug().Msgf("evaluating passwords with %d threads", workers)
	reader := bufio.NewReader(r)
	for {
		password, long, err := readLine(reader, maxLineBytes)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case long:
			summary.tooLong++
		case password == "":
			summary.skipped++
		default:
			if err = tasks.Publish(evaluate, password); err != nil {
				return nil, err
			}
		}
	}

	tasks.Wait()

	sorty.SortSlice(summary.entropies)
	return summary, nil
}

// readLine returns the next line without its line ending. A line over max bytes is consumed
// and reported as long, without its content.
func readLine(r *bufio.Reader, max int) (string, bool, error) {
	var line []byte
	long := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}

		if !long && len(line)+len(chunk) > max {
			long, line = true, nil
		}
		if !long {
			line = append(line, chunk...)
		}
		if !isPrefix {
			return string(line), long, nil
		}
	}
}
