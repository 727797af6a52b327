// Package ridership turns raw calendar batches into the fixed-schema feature
// tables consumed by the pre-trained daily ridership models, and serves
// forecasts over HTTP.
//
// The preprocessing pipeline runs in a fixed order: calendar feature
// extraction, event/holiday merge, weather fill, day-of-week encoding. The
// output column set and order is identical for every batch regardless of
// which dates, weekdays or event categories appear in it; a model trained on
// the full schema always receives the full schema at inference time.
package ridership
