// Package mocks holds testify mocks of the ports interfaces.
package mocks
