// Package session provides experiment run bookkeeping: a named directory on
// disk, a unique run ID, and a CBOR event log shared by every device taking
// part in the run.
//
//	sess, err := session.New(session.Config{Name: "rotation-sweep", BaseDir: dataDir})
//	defer sess.Close()
//
//	drive, err := motordrive.Open(conn, device.WithLogger(sess.Logger()))
//
// Events logged by the devices are stamped with the session's run ID, so a
// single log file can later be filtered per session with log.Reader.
package session
