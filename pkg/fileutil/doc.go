// Package fileutil reads and writes files safely: bounded reads, atomic
// temp-file-and-rename writes, and content digests used to skip writes that
// would not change anything.
package fileutil
