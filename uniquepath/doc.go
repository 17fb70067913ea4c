// Package uniquepath generates collision-free file and directory paths for
// callers that stage downloaded or temporary artifacts without overwriting
// existing files.
//
// Two collision-avoidance strategies are provided. The reservation strategy
// (FromIdentifier, TempDir with create enabled) claims a name by creating the
// file or directory with an exclusive create call, so competing callers are
// serialized by the filesystem itself and the guarantee holds across
// processes. The advisory strategy (Random, RandomTemp, TempDir without
// create, FromIdentifierAdvisory) only verifies non-existence at check time;
// it is race-prone across processes and relies on the token space being large
// enough that true collisions do not happen in practice.
package uniquepath
