// Package catalog contains the laundry service catalog.
//
// Services are priced per kilogram (weight-based) or per item. A service may
// define a discounted member price; customers on the member tier pay it where
// defined, everyone else pays the standard price.
//
// The canonical representation of the catalog is a flat list of services with
// a category field. Grouping by category is a derived, read-only view built
// with GroupByCategory.
package catalog
