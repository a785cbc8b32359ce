// Package workcenter models the schedulable production resources orders are placed on.
package workcenter
