// Package catalog contains the menu: categories and the menu items filed
// under them.
//
// Every price in the catalog is a strictly positive kernel.Money no larger
// than kernel.MaxPrice. The check lives in the MenuItem constructor and in
// Reprice, so an invalid price is rejected before any role or storage concern
// is consulted.
package catalog
