// Package chart renders the interactive health dashboard as a standalone
// HTML document.
//
// The dashboard is a single page with four panels: heart rate over time
// with the low-reading threshold and configured event markers, low
// heart-rate events by time of day, daily workout minutes stacked by
// category, and the nightly sleep comparison between sources. All panels
// are rendered with go-echarts; the resulting file needs no server and
// opens directly in a browser.
package chart
