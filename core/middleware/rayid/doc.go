// Package rayid assigns a request ID ("ray ID") to every panel API call and
// exposes it through the X-Ray-ID header and fiber Locals.
package rayid
