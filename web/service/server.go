package service

import (
	"runtime"
	"time"

	"github.com/hakwonlab/acadpanel/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status is a point-in-time snapshot of the host running the panel. The
// settings page shows it so an academy owner can tell when the box that
// keeps their attendance records is running out of disk.
type Status struct {
	T          time.Time `json:"-"`
	Cpu        float64   `json:"cpu"`
	CpuCores   int       `json:"cpuCores"`
	LogicalPro int       `json:"logicalPro"`
	Mem        struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Disk struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"disk"`
	Uptime   uint64    `json:"uptime"`
	Loads    []float64 `json:"loads"`
	AppStats struct {
		Threads int    `json:"threads"`
		Mem     uint64 `json:"mem"`
		Uptime  uint64 `json:"uptime"`
	} `json:"appStats"`
}

type ServerService struct {
	startedAt time.Time
}

func NewServerService() *ServerService {
	return &ServerService{startedAt: time.Now()}
}

func (s *ServerService) GetStatus() *Status {
	status := &Status{T: time.Now()}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	status.CpuCores, err = cpu.Counts(false)
	if err != nil {
		logger.Warning("get cpu cores count failed:", err)
	}
	status.LogicalPro = runtime.NumCPU()

	upTime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	diskInfo, err := disk.Usage("/")
	if err != nil {
		logger.Warning("get disk usage failed:", err)
	} else {
		status.Disk.Current = diskInfo.Used
		status.Disk.Total = diskInfo.Total
	}

	avgState, err := load.Avg()
	if err != nil {
		logger.Warning("get load avg failed:", err)
	} else {
		status.Loads = []float64{avgState.Load1, avgState.Load5, avgState.Load15}
	}

	var rtm runtime.MemStats
	runtime.ReadMemStats(&rtm)
	status.AppStats.Mem = rtm.Sys
	status.AppStats.Threads = runtime.NumGoroutine()
	status.AppStats.Uptime = uint64(time.Since(s.startedAt).Seconds())

	return status
}
