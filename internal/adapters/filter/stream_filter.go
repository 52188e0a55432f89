package filter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/navgurukul/region-detection/internal/core"
	"go.uber.org/zap"
)

// StreamFilter serves region classification to the capture pipeline over a
// local TCP socket. The protocol is newline-delimited JSON: each request line
// is an array of regions, each response line the same array enriched.
// Malformed lines receive a JSON error object; the connection stays open.
type StreamFilter struct {
	service       *core.RegionAnalysisService
	logger        *zap.Logger
	listenAddr    string
	readTimeout   time.Duration
	maxBatchBytes int
	listener      net.Listener
	wg            sync.WaitGroup
}

type streamError struct {
	Error string `json:"error"`
}

// NewStreamFilter creates a new stream filter
func NewStreamFilter(
	service *core.RegionAnalysisService,
	logger *zap.Logger,
	listenAddr string,
	readTimeout time.Duration,
	maxBatchBytes int,
) *StreamFilter {
	return &StreamFilter{
		service:       service,
		logger:        logger,
		listenAddr:    listenAddr,
		readTimeout:   readTimeout,
		maxBatchBytes: maxBatchBytes,
	}
}

// Start begins listening for region batches
func (f *StreamFilter) Start() error {
	listener, err := net.Listen("tcp", f.listenAddr)
	if err != nil {
		return err
	}
	f.listener = listener

	f.logger.Info("Stream filter starting", zap.String("address", f.listenAddr))

	f.wg.Add(1)
	go f.acceptLoop()

	return nil
}

// Addr returns the bound listen address, or "" before Start.
func (f *StreamFilter) Addr() string {
	if f.listener == nil {
		return ""
	}
	return f.listener.Addr().String()
}

// Stop closes the listener and waits for in-flight connections
func (f *StreamFilter) Stop() error {
	if f.listener != nil {
		if err := f.listener.Close(); err != nil {
			return err
		}
	}
	f.wg.Wait()
	return nil
}

// ProcessRegions classifies a batch of regions directly, bypassing the socket.
// Mainly used for testing.
func (f *StreamFilter) ProcessRegions(ctx context.Context, regions []*core.Region) ([]*core.Region, error) {
	return f.service.AnalyzeRegions(ctx, regions), nil
}

func (f *StreamFilter) acceptLoop() {
	defer f.wg.Done()

	for {
		conn, err := f.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			f.logger.Error("Accept failed", zap.Error(err))
			continue
		}

		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			f.handleConn(conn)
		}()
	}
}

func (f *StreamFilter) handleConn(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	f.logger.Debug("Pipeline connected", zap.String("remote", remote))

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), f.maxBatchBytes)
	encoder := json.NewEncoder(conn)

	for {
		if f.readTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(f.readTimeout)); err != nil {
				return
			}
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
				f.logger.Debug("Pipeline disconnected", zap.String("remote", remote), zap.Error(err))
			}
			return
		}

		var regions []*core.Region
		if err := json.Unmarshal(scanner.Bytes(), &regions); err != nil {
			f.logger.Warn("Malformed region batch", zap.String("remote", remote), zap.Error(err))
			if err := encoder.Encode(streamError{Error: "malformed region batch: " + err.Error()}); err != nil {
				return
			}
			continue
		}

		enriched := f.service.AnalyzeRegions(context.Background(), regions)
		if err := encoder.Encode(enriched); err != nil {
			f.logger.Error("Failed to write response", zap.String("remote", remote), zap.Error(err))
			return
		}
	}
}
