// Package config loads the optional YAML configuration for sparql2html.
//
// Example file:
//
//	columns:
//	  link: freebaseURI
//	  text: actorName
//	  description: film
//	headers:
//	  text: Actor
//	  description: Film
//	render:
//	  escapeHTML: true
//	  legacyHeader: false
//	input:
//	  maxBytes: 1048576
//	log:
//	  level: debug
//	  file: /var/log/sparql2html.log
package config
