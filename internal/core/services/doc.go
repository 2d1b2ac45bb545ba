// Package services implements the core reading session engine: the
// draw engine, the interpretation assembler, the reading and settings
// stores, and the divination orchestrator that ties them together.
//
// Services depend only on domain types and driven ports. Driving
// adapters reach them through the interfaces in ports/driving.
package services
