// Package model defines the database models for the access request service.
package model
