package gcal

import (
	"drive-time-planner/pkg/gcalendar"
	pkgLog "drive-time-planner/pkg/log"
)

// implRepository adapts pkg/gcalendar to the domain CalendarRepository.
type implRepository struct {
	client *gcalendar.Client
	l      pkgLog.Logger
}

// New creates a Google Calendar backed repository.
func New(client *gcalendar.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
