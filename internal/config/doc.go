// Package config loads navstack.json: the route definition list and
// the navigation service settings.
//
// Configuration can live on disk or in S3 (s3://bucket/key). The
// route list is handed to route.Normalize in declaration order, since
// that order breaks specificity ties.
package config
