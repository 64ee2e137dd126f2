// Package main Landing API
//
//	@title			Landing API
//	@version		1.0
//	@description	Public API behind the UniEdit landing page: testimonials and invitation placeholders.
//
//	@contact.name	UniEdit Support
//	@contact.url	https://uniedit.io/support
//	@contact.email	support@uniedit.io
//
//	@license.name	Proprietary
//	@license.url	https://uniedit.io/license
//
//	@host			localhost:8080
//	@BasePath		/api/v1
//
//	@tag.name			Testimonial
//	@tag.description	Customer testimonials shown on the landing page
//
//	@tag.name			Invitation
//	@tag.description	Invitation placeholders
package main
