// Package hafas is a client for HAFAS-profile REST endpoints
// (transport.rest style). It exposes the four queries the service needs:
// station search, departure/arrival boards, and journey search.
package hafas
