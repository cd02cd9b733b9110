package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/ttacon/chalk"
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
	}, nil
}

// CaptureProfile starts a background capture unless one is running or the
// last one is too recent
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("tps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				logWarning("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				logWarning("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("profile %s done: HeapAlloc=%d KB NumGC=%d", baseName, m.HeapAlloc/1024, m.NumGC)
	}()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s (go tool pprof -http=:8080 %s)", profilePath, profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to: %s", tracePath)
	return nil
}

// FrameMonitor measures the tick rate over short windows and flags drops
type FrameMonitor struct {
	minTPS   float64
	window   time.Duration
	warmup   time.Duration
	cooldown time.Duration

	started    time.Time
	windowAt   time.Time
	frames     int
	tps        float64
	lastDrop   time.Time
	hasDropped bool
}

// NewFrameMonitor creates a monitor reporting rates below minTPS
func NewFrameMonitor(minTPS float64, now time.Time) *FrameMonitor {
	return &FrameMonitor{
		minTPS:   minTPS,
		window:   500 * time.Millisecond,
		warmup:   3 * time.Second,
		cooldown: 10 * time.Second,
		started:  now,
		windowAt: now,
	}
}

// Frame records one tick at now. It returns true when a window closes
// with a rate under the minimum, outside warm-up and at most once per
// cooldown.
func (m *FrameMonitor) Frame(now time.Time) bool {
	m.frames++
	elapsed := now.Sub(m.windowAt)
	if elapsed < m.window {
		return false
	}

	m.tps = float64(m.frames) / elapsed.Seconds()
	m.frames = 0
	m.windowAt = now

	if m.minTPS <= 0 || m.tps >= m.minTPS || now.Sub(m.started) < m.warmup {
		return false
	}
	if m.hasDropped && now.Sub(m.lastDrop) < m.cooldown {
		return false
	}
	m.lastDrop = now
	m.hasDropped = true
	return true
}

// TPS returns the rate measured over the last closed window
func (m *FrameMonitor) TPS() float64 {
	return m.tps
}

// logWarning prints a highlighted log line
func logWarning(format string, args ...any) {
	log.Printf(chalk.Yellow.Color(format), args...)
}
