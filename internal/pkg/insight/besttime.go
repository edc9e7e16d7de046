package insight

import (
	"fmt"
	"math"
	"time"
)

// BestTimeSlot 每个工作日表现最好的发布时段（UTC）
type BestTimeSlot struct {
	Day   string `json:"day"`
	Hour  string `json:"hour"`  // 12 小时制，如 "9:00 AM"
	Score int    `json:"score"` // 0-100 相对分
}

const (
	defaultBestHour  = 9
	defaultBestScore = 50
)

// weekdaysMondayFirst 输出顺序固定周一起始
var weekdaysMondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

type hourStat struct {
	total int
	count int
}

// BestTimes 按（星期、UTC 小时）分桶统计平均互动，每个工作日取
// 均值最高的小时；均值相同取更早的小时。分数按全局最大均值归一到
// 0-100（最大值下限钳到 1，避免除零）。没有样本的工作日给
// 9:00 AM / 50 的中性占位，以区分"无数据"与"低表现时段"。
func BestTimes(records []Record) []BestTimeSlot {
	var stats [7][24]hourStat

	for _, r := range records {
		if r.Raw.PublishedAt == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, r.Raw.PublishedAt)
		if err != nil {
			continue
		}
		ts = ts.UTC()
		s := &stats[int(ts.Weekday())][ts.Hour()]
		s.total += r.Engagement
		s.count++
	}

	type choice struct {
		hour int
		mean float64
		has  bool
	}
	var chosen [7]choice
	maxMean := 0.0

	for wd := 0; wd < 7; wd++ {
		best := choice{hour: defaultBestHour}
		for hour := 0; hour < 24; hour++ {
			s := stats[wd][hour]
			if s.count == 0 {
				continue
			}
			mean := float64(s.total) / float64(s.count)
			if !best.has || mean > best.mean {
				best = choice{hour: hour, mean: mean, has: true}
			}
			if mean > maxMean {
				maxMean = mean
			}
		}
		chosen[wd] = best
	}

	if maxMean < 1 {
		maxMean = 1
	}

	slots := make([]BestTimeSlot, 0, 7)
	for _, wd := range weekdaysMondayFirst {
		c := chosen[int(wd)]
		slot := BestTimeSlot{
			Day:   wd.String(),
			Hour:  formatHour(c.hour),
			Score: defaultBestScore,
		}
		if c.has {
			slot.Score = int(math.Round(c.mean / maxMean * 100))
		}
		slots = append(slots, slot)
	}
	return slots
}

func formatHour(hour int) string {
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}
