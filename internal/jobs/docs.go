// Package jobs provides scheduled background tasks for the production scheduler.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and configured from the environment.
//
// # Available Jobs
//
// 1. CalendarResyncJob - rebuilds the resource calendar from stored orders (default every 5 minutes)
// 2. OverdueReportJob - logs overdue, due-today and urgent counts (default hourly)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(syncCalendarHandler, dashboardHandler, jobs.Schedules{
//		CalendarResync: "0 */5 * * * *",
//		OverdueReport:  "0 0 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures inside a run are logged and the next tick retries. A failed start
// stops the jobs already running.
package jobs
