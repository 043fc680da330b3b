// Package messaging hides the broker behind one small interface so module
// code can publish events and run consumers without knowing whether the
// deployment uses Kafka, NATS, NSQ or Google Pub/Sub. The driver is chosen
// at startup from configuration through NewFromDriver.
package messaging
