// Package control exposes allocator accounting for monitoring: a registry
// of named api.StatsSource instances and a prometheus collector that
// exports their counters. Nothing in containers/ depends on this package;
// wiring it up is the application's choice.
package control
