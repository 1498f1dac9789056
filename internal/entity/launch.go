package entity

import "time"

// Launch is one run of the entry point.
type Launch struct {
	Id          uint      `gorm:"primaryKey"`
	Interpreter string    `gorm:"not null"`
	Source      string    `gorm:"not null"`
	EntryPoint  string    `gorm:"not null"`
	ExitCode    int       `gorm:"not null"`
	StartedAt   time.Time `gorm:"not null;index"`
	FinishedAt  time.Time `gorm:"not null"`
}

func (launch Launch) Succeeded() bool {
	return launch.ExitCode == 0
}

func (launch Launch) Duration() time.Duration {
	return launch.FinishedAt.Sub(launch.StartedAt)
}
