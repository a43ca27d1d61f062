package tracing

import (
	"bytes"
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/paging"
	"github.com/sarchlab/pagesim/trace"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func buildSimulator(
	strategy paging.Strategy,
	capacity int,
	entries ...trace.Entry,
) *paging.Simulator {
	s, err := paging.MakeBuilder().
		WithStrategy(strategy).
		WithCapacity(capacity).
		WithTrace(trace.New(entries)).
		Build()
	Expect(err).NotTo(HaveOccurred())

	return s
}

var _ = Describe("VerbosePrinter", func() {
	It("should print write-backs and drops", func() {
		buf := new(bytes.Buffer)
		s := buildSimulator(paging.FIFO, 1,
			trace.Entry{PFN: 0x41f, Kind: trace.Write},
			trace.Entry{PFN: 0x13f5e, Kind: trace.Read},
			trace.Entry{PFN: 0x5e78, Kind: trace.Read},
		)
		Attach(s, NewVerbosePrinter(buf))

		s.Run()

		Expect(buf.String()).To(Equal(
			"Page 0x13F5E was read from disk, " +
				"page 0x0041F was written to the disk.\n" +
				"Page 0x05E78 was read from disk, " +
				"page 0x13F5E was dropped (it was not dirty).\n"))
	})

	It("should print nothing without evictions", func() {
		buf := new(bytes.Buffer)
		s := buildSimulator(paging.LRU, 2,
			trace.Entry{PFN: 1}, trace.Entry{PFN: 2}, trace.Entry{PFN: 1})
		Attach(s, NewVerbosePrinter(buf))

		s.Run()

		Expect(buf.Len()).To(BeZero())
	})
})

var _ = Describe("Attach", func() {
	It("should refuse to attach the same hook twice", func() {
		s := buildSimulator(paging.LRU, 1)
		printer := NewVerbosePrinter(new(bytes.Buffer))

		Attach(s, printer)

		Expect(func() { Attach(s, printer) }).To(Panic())
		Expect(s.Hooks()).To(HaveLen(1))
	})

	It("should accept function hooks", func() {
		s := buildSimulator(paging.LRU, 1)
		hook := paging.HookFunc(func(paging.HookCtx) {})

		Attach(s, hook)
		Attach(s, hook)

		Expect(s.Hooks()).To(HaveLen(2))
	})
})

var _ = Describe("EvictionRecorder", func() {
	var mockCtrl *gomock.Controller

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should insert one row per eviction", func() {
		recorder := NewMockDataRecorder(mockCtrl)
		recorder.EXPECT().CreateTable(EvictionTable, EvictionEntry{})
		recorder.EXPECT().InsertData(EvictionTable, EvictionEntry{
			Strategy: "CLOCK",
			Time:     1,
			Incoming: 2,
			Evicted:  1,
			Dirty:    true,
			Frame:    0,
		})

		s := buildSimulator(paging.CLOCK, 1,
			trace.Entry{PFN: 1, Kind: trace.Write},
			trace.Entry{PFN: 2})
		Attach(s, NewEvictionRecorder(recorder))

		s.Run()
	})

	It("should store evictions that can be read back", func() {
		dbPath := filepath.Join(GinkgoT().TempDir(), "evictions.sqlite3")

		writer, err := datarecording.New(dbPath)
		Expect(err).NotTo(HaveOccurred())

		for _, strategy := range []paging.Strategy{paging.FIFO, paging.LRU} {
			s := buildSimulator(strategy, 2,
				trace.Entry{PFN: 1}, trace.Entry{PFN: 2},
				trace.Entry{PFN: 1}, trace.Entry{PFN: 3, Kind: trace.Write},
				trace.Entry{PFN: 4})
			Attach(s, NewEvictionRecorder(writer))
			s.Run()
		}

		Expect(writer.Close()).To(Succeed())

		reader, err := datarecording.NewReader(dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		reader.MapTable(EvictionTable, EvictionEntry{})

		results, total, err := reader.Query(
			context.Background(),
			EvictionTable,
			datarecording.QueryParams{
				Where:   "Strategy = ?",
				Args:    []any{"LRU"},
				OrderBy: "Time",
			},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(2))
		Expect(results).To(Equal([]any{
			&EvictionEntry{
				Strategy: "LRU", Time: 3, Incoming: 3, Evicted: 2, Frame: 1,
			},
			&EvictionEntry{
				Strategy: "LRU", Time: 4, Incoming: 4, Evicted: 1, Frame: 0,
			},
		}))
	})
})

var _ = Describe("AccessLogger", func() {
	var (
		buf    *bytes.Buffer
		logger *logrus.Logger
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		logger = logrus.New()
		logger.SetOutput(buf)
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	})

	It("should log hits and misses at trace level", func() {
		logger.SetLevel(logrus.TraceLevel)
		s := buildSimulator(paging.LRU, 1,
			trace.Entry{PFN: 7}, trace.Entry{PFN: 7, Kind: trace.Write})
		Attach(s, NewAccessLogger(logger))

		s.Run()

		Expect(buf.String()).To(ContainSubstring("msg=miss"))
		Expect(buf.String()).To(ContainSubstring("msg=hit"))
		Expect(buf.String()).To(ContainSubstring("kind=W"))
		Expect(buf.String()).To(ContainSubstring("strategy=LRU"))
	})

	It("should only log evictions at debug level", func() {
		logger.SetLevel(logrus.DebugLevel)
		s := buildSimulator(paging.FIFO, 1,
			trace.Entry{PFN: 7}, trace.Entry{PFN: 8})
		Attach(s, NewAccessLogger(logger))

		s.Run()

		Expect(buf.String()).NotTo(ContainSubstring("msg=miss"))
		Expect(buf.String()).To(ContainSubstring("msg=evict"))
		Expect(buf.String()).To(ContainSubstring("evicted=7"))
	})
})
