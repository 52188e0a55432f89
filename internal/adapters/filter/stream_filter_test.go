package filter

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/navgurukul/region-detection/internal/core"
	"github.com/navgurukul/region-detection/internal/noise"
	"github.com/navgurukul/region-detection/internal/utils"
)

func newTestService() *core.RegionAnalysisService {
	logger := zap.NewNop()
	library := core.NewPatternLibrary()
	return core.NewRegionAnalysisService(
		core.NewCodeDetector(library, nil, logger),
		core.NewContentClassifier(library, logger),
		nil,
		noise.NewChecker(nil, logger),
		utils.NewTextProcessor(logger),
		logger,
		core.AnalysisOptions{
			MinOCRConfidence: 0.5,
			Detect:           core.DefaultDetectOptions(),
		},
	)
}

func startTestFilter(t *testing.T) *StreamFilter {
	t.Helper()
	f := NewStreamFilter(newTestService(), zap.NewNop(), "127.0.0.1:0", 5*time.Second, 1024*1024)
	if err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		if err := f.Stop(); err != nil {
			t.Errorf("Stop: %v", err)
		}
	})
	return f
}

func TestStreamFilterRoundTrip(t *testing.T) {
	f := startTestFilter(t)

	conn, err := net.Dial("tcp", f.Addr())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	regions := []*core.Region{
		{ID: "r1", Text: "const total = items.reduce((a, b) => a + b, 0);", OCRConfidence: 0.9},
		{ID: "r2", Text: "The sprint review went well and everyone agreed on scope.", OCRConfidence: 0.9},
	}
	payload, err := json.Marshal(regions)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		t.Fatalf("Write: %v", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		t.Fatalf("no response: %v", scanner.Err())
	}

	var enriched []*core.Region
	if err := json.Unmarshal(scanner.Bytes(), &enriched); err != nil {
		t.Fatalf("Unmarshal response: %v", err)
	}
	if len(enriched) != 2 {
		t.Fatalf("got %d regions, want 2", len(enriched))
	}
	if enriched[0].ContentType != core.CategoryCode {
		t.Errorf("r1 ContentType = %s, want %s", enriched[0].ContentType, core.CategoryCode)
	}
	if enriched[1].ContentType != core.CategoryRegularText {
		t.Errorf("r2 ContentType = %s, want %s", enriched[1].ContentType, core.CategoryRegularText)
	}
}

func TestStreamFilterMalformedLine(t *testing.T) {
	f := startTestFilter(t)

	conn, err := net.Dial("tcp", f.Addr())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("not json\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		t.Fatalf("no error response: %v", scanner.Err())
	}
	var errResp streamError
	if err := json.Unmarshal(scanner.Bytes(), &errResp); err != nil {
		t.Fatalf("Unmarshal error response: %v", err)
	}
	if errResp.Error == "" {
		t.Error("error response has empty message")
	}

	// The connection survives a bad line.
	regions := []*core.Region{{ID: "r1", Text: "$ npm install\n$ npm run build", OCRConfidence: 0.9}}
	payload, _ := json.Marshal(regions)
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		t.Fatalf("Write after error: %v", err)
	}
	if !scanner.Scan() {
		t.Fatalf("no response after error: %v", scanner.Err())
	}
	var enriched []*core.Region
	if err := json.Unmarshal(scanner.Bytes(), &enriched); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if enriched[0].ContentType != core.CategoryTerminal {
		t.Errorf("ContentType = %s, want %s", enriched[0].ContentType, core.CategoryTerminal)
	}
}
