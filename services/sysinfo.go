package services

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemInfo is one host metrics snapshot for the status page.
type SystemInfo struct {
	CPUPercent  float64   `json:"cpu_percent"`
	RAMUsedGB   float64   `json:"ram_used_gb"`
	RAMTotalGB  float64   `json:"ram_total_gb"`
	RAMPercent  float64   `json:"ram_percent"`
	DiskUsedGB  float64   `json:"disk_used_gb"`
	DiskFreeGB  float64   `json:"disk_free_gb"`
	DiskTotalGB float64   `json:"disk_total_gb"`
	OSName      string    `json:"os_name"`
	Cores       int       `json:"cores"`
	SampledAt   time.Time `json:"sampled_at"`
}

// SysInfoService reads host metrics via gopsutil and keeps the latest
// snapshot for the status endpoint, so page loads never block on the
// one-second CPU sampling window.
type SysInfoService struct {
	diskPath string

	mu     sync.RWMutex
	latest *SystemInfo
}

func NewSysInfoService() *SysInfoService {
	path := "/"
	if runtime.GOOS == "windows" {
		path = `C:\`
	}
	return &SysInfoService{diskPath: path}
}

func toGB(bytes uint64) float64 {
	return math.Round(float64(bytes)/(1024*1024*1024)*100) / 100
}

// Sample reads a fresh snapshot from the host and caches it.
func (s *SysInfoService) Sample() (*SystemInfo, error) {
	cpuPercents, err := cpu.Percent(time.Second, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read CPU usage: %w", err)
	}
	var cpuPercent float64
	if len(cpuPercents) > 0 {
		cpuPercent = math.Round(cpuPercents[0]*100) / 100
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory usage: %w", err)
	}

	du, err := disk.Usage(s.diskPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk usage: %w", err)
	}

	info := &SystemInfo{
		CPUPercent:  cpuPercent,
		RAMUsedGB:   toGB(vm.Used),
		RAMTotalGB:  toGB(vm.Total),
		RAMPercent:  math.Round(vm.UsedPercent*100) / 100,
		DiskUsedGB:  toGB(du.Used),
		DiskFreeGB:  toGB(du.Free),
		DiskTotalGB: toGB(du.Total),
		Cores:       runtime.NumCPU(),
		SampledAt:   time.Now(),
	}

	if hi, err := host.Info(); err == nil {
		info.OSName = hi.Platform + " " + hi.PlatformVersion
	} else {
		info.OSName = runtime.GOOS
	}

	s.mu.Lock()
	s.latest = info
	s.mu.Unlock()

	return info, nil
}

// Latest returns the cached snapshot, sampling synchronously when the cache
// is still cold (first request before the poller has run).
func (s *SysInfoService) Latest() (*SystemInfo, error) {
	s.mu.RLock()
	info := s.latest
	s.mu.RUnlock()
	if info != nil {
		return info, nil
	}
	return s.Sample()
}
