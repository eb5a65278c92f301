// Package books defines the book and author aggregates: entities, list
// queries, repository and service contracts. An author owns many books;
// a book always references exactly one author.
package books
