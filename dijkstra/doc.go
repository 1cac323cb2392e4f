// Package dijkstra provides single-source shortest paths over a *core.Graph.
//
// One engine serves both weight dimensions: pass WithMetric(core.MetricDistance)
// (the default) or WithMetric(core.MetricPrice). Only the selected weight is validated
// and summed.
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMetric(core.MetricPrice))
//	path, err := res.PathTo(3)          // core.ErrUnreachable if not connected
//	path, err := dijkstra.ShortestPath(g, 0, 3)
//
// The whole shortest-path tree is always computed; PathTo only reads it.
package dijkstra
