// Package persistence provides the GORM backed repositories of the service.
// Repositories join the transaction carried by the context when one is
// active (see GormTransactor) and wrap every driver failure with
// apperr.ErrDatabase.
package persistence
