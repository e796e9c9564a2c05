package jobs

import "time"

func (j *HolderPurgeJob) SetClock(now func() time.Time) {
	j.now = now
}
