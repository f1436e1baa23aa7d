// Package shadowtable holds the authoritative list of every MPI entry
// point the substitution table (C5) must shadow, plus the
// position(s) of the communicator argument(s) in each one's real MPI
// signature. interpose/gen consumes this table to emit
// interpose/shadows_gen.go; it exists so the ~130 near-identical
// shadow bodies are generated from one list of signatures rather than
// hand-written. It is a plain (non-cgo) package so both the cgo
// interpose binary and the generator tool can import it.
package shadowtable

// ShadowEntry names one MPI/MPIX entry point covered by the
// substitution table and which 1-based positions of its real argument
// list carry a communicator that must be translated.
type ShadowEntry struct {
	Name     string
	CommArgs []int
}

// Shadowed enumerates the generated substitution-table surface.
// Comm_free and Comm_disconnect are not listed here: entry points that
// release handles forward the caller's handle unrewritten and are
// hand-written in init.go rather than generated (see NoTranslate),
// since the no-translate rule is an exception to the table's one
// mechanical behavior. MPI_DUP_FN is deliberately absent.
var Shadowed = []ShadowEntry{
	// Point-to-point.
	{"MPI_Send", []int{6}},
	{"MPI_Recv", []int{6}},
	{"MPI_Bsend", []int{6}},
	{"MPI_Ssend", []int{6}},
	{"MPI_Rsend", []int{6}},
	{"MPI_Isend", []int{6}},
	{"MPI_Irecv", []int{6}},
	{"MPI_Ibsend", []int{6}},
	{"MPI_Issend", []int{6}},
	{"MPI_Irsend", []int{6}},
	{"MPI_Sendrecv", []int{11}},
	{"MPI_Sendrecv_replace", []int{8}},
	{"MPI_Send_init", []int{6}},
	{"MPI_Bsend_init", []int{6}},
	{"MPI_Ssend_init", []int{6}},
	{"MPI_Rsend_init", []int{6}},
	{"MPI_Recv_init", []int{6}},
	{"MPI_Probe", []int{3}},
	{"MPI_Iprobe", []int{3}},
	{"MPI_Mprobe", []int{3}},
	{"MPI_Improbe", []int{3}},

	// Pack/unpack.
	{"MPI_Pack", []int{7}},
	{"MPI_Unpack", []int{7}},
	{"MPI_Pack_size", []int{3}},

	// Collectives.
	{"MPI_Barrier", []int{1}},
	{"MPI_Bcast", []int{5}},
	{"MPI_Gather", []int{8}},
	{"MPI_Gatherv", []int{9}},
	{"MPI_Scatter", []int{8}},
	{"MPI_Scatterv", []int{9}},
	{"MPI_Allgather", []int{7}},
	{"MPI_Allgatherv", []int{8}},
	{"MPI_Alltoall", []int{7}},
	{"MPI_Alltoallv", []int{9}},
	{"MPI_Alltoallw", []int{9}},
	{"MPI_Reduce", []int{7}},
	{"MPI_Allreduce", []int{6}},
	{"MPI_Scan", []int{6}},
	{"MPI_Exscan", []int{6}},
	{"MPI_Reduce_scatter", []int{6}},
	{"MPI_Reduce_scatter_block", []int{6}},
	{"MPI_Ibarrier", []int{1}},
	{"MPI_Ibcast", []int{5}},
	{"MPI_Igather", []int{8}},
	{"MPI_Igatherv", []int{9}},
	{"MPI_Iscatter", []int{8}},
	{"MPI_Iscatterv", []int{9}},
	{"MPI_Iallgather", []int{7}},
	{"MPI_Iallgatherv", []int{8}},
	{"MPI_Ialltoall", []int{7}},
	{"MPI_Ialltoallv", []int{9}},
	{"MPI_Ialltoallw", []int{9}},
	{"MPI_Ireduce", []int{7}},
	{"MPI_Iallreduce", []int{6}},
	{"MPI_Iscan", []int{6}},
	{"MPI_Iexscan", []int{6}},
	{"MPI_Ireduce_scatter", []int{6}},
	{"MPI_Ireduce_scatter_block", []int{6}},

	// Neighborhood collectives.
	{"MPI_Neighbor_allgather", []int{7}},
	{"MPI_Neighbor_allgatherv", []int{8}},
	{"MPI_Neighbor_alltoall", []int{7}},
	{"MPI_Neighbor_alltoallv", []int{9}},
	{"MPI_Neighbor_alltoallw", []int{9}},
	{"MPI_Ineighbor_allgather", []int{7}},
	{"MPI_Ineighbor_allgatherv", []int{8}},
	{"MPI_Ineighbor_alltoall", []int{7}},
	{"MPI_Ineighbor_alltoallv", []int{9}},
	{"MPI_Ineighbor_alltoallw", []int{9}},

	// Group/comm inspection.
	{"MPI_Comm_group", []int{1}},
	{"MPI_Comm_size", []int{1}},
	{"MPI_Comm_rank", []int{1}},
	{"MPI_Comm_compare", []int{1, 2}},

	// Comm construction.
	{"MPI_Comm_dup", []int{1}},
	{"MPI_Comm_dup_with_info", []int{1}},
	{"MPI_Comm_create", []int{1}},
	{"MPI_Comm_split", []int{1}},
	{"MPI_Comm_split_type", []int{1}},
	{"MPI_Comm_create_group", []int{1}},
	{"MPI_Comm_idup", []int{1}},

	// Intercommunicator.
	{"MPI_Comm_test_inter", []int{1}},
	{"MPI_Comm_remote_size", []int{1}},
	{"MPI_Comm_remote_group", []int{1}},
	{"MPI_Intercomm_create", []int{1, 3}},
	{"MPI_Intercomm_merge", []int{1}},

	// Attributes.
	{"MPI_Comm_set_attr", []int{1}},
	{"MPI_Comm_get_attr", []int{1}},
	{"MPI_Comm_delete_attr", []int{1}},
	{"MPI_Attr_put", []int{1}},
	{"MPI_Attr_get", []int{1}},
	{"MPI_Attr_delete", []int{1}},

	// Topology.
	{"MPI_Cart_create", []int{1}},
	{"MPI_Cart_get", []int{1}},
	{"MPI_Cart_rank", []int{1}},
	{"MPI_Cart_coords", []int{1}},
	{"MPI_Cart_shift", []int{1}},
	{"MPI_Cart_sub", []int{1}},
	{"MPI_Cart_map", []int{1}},
	{"MPI_Graph_create", []int{1}},
	{"MPI_Graphdims_get", []int{1}},
	{"MPI_Graph_get", []int{1}},
	{"MPI_Graph_neighbors_count", []int{1}},
	{"MPI_Graph_neighbors", []int{1}},
	{"MPI_Graph_map", []int{1}},
	{"MPI_Dist_graph_create_adjacent", []int{1}},
	{"MPI_Dist_graph_create", []int{1}},
	{"MPI_Dist_graph_neighbors", []int{1}},
	{"MPI_Dist_graph_neighbors_count", []int{1}},

	// Probing already listed above; persistent-request inits already
	// listed above with their blocking counterparts.

	// Connection management.
	{"MPI_Comm_connect", []int{4}},
	{"MPI_Comm_spawn", []int{6}},
	{"MPI_Comm_spawn_multiple", []int{7}},

	// One-sided window creation.
	{"MPI_Win_create", []int{5}},
	{"MPI_Win_allocate", []int{4}},
	{"MPI_Win_allocate_shared", []int{4}},
	{"MPI_Win_create_dynamic", []int{2}},

	// Error handlers.
	{"MPI_Comm_set_errhandler", []int{1}},
	{"MPI_Comm_get_errhandler", []int{1}},
	{"MPI_Errhandler_set", []int{1}},
	{"MPI_Errhandler_get", []int{1}},
	{"MPI_Comm_call_errhandler", []int{1}},
	{"MPI_Abort", []int{1}},

	// File.
	{"MPI_File_open", []int{1}},

	// Fault-tolerance extensions.
	{"MPIX_Comm_failure_get_acked", []int{1}},
	{"MPIX_Comm_reenable_any_source", []int{1}},
}

// NoTranslate lists the entry points that forward their communicator
// argument unrewritten, even when it equals the world communicator:
// the handle-releasing calls that must act on what the caller actually
// passed, not on a substituted communicator.
var NoTranslate = []string{"MPI_Comm_free", "MPI_Comm_disconnect"}
