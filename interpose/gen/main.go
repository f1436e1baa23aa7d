// Command gen-shadows renders interpose/shadows_gen.go from the table
// in internal/shadowtable. It is invoked via the go:generate directive
// in interpose/doc.go: every entry in shadowtable.Shadowed gets a
// generated shadow function from one list of signatures rather than
// ~123 hand-written, near-identical bodies.
//
// Every entry in shadowtable.Shadowed must have a matching signature
// registered below; running this tool regenerates shadows_gen.go in
// full. An entry added to shadowtable without a registry signature is
// reported and skipped, rather than failing the build, so the table
// and the registry can be extended independently.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/joeycumines/commsplit/internal/shadowtable"
)

const tmplText = `// Code generated by interpose/gen from internal/shadowtable; DO NOT EDIT.

package main

/*
#include <mpi.h>
*/
import "C"

import "unsafe"

{{range .}}
//export {{.Entry.Name}}
func {{.Entry.Name}}({{.ParamList}}) C.int {
	{{range .TranslateLines}}{{.}}
	{{end}}return C.P{{.NameNoPrefix}}({{.ArgList}})
}
{{end}}
`

type sig struct {
	Params []param // full real parameter list, in order
}

type param struct {
	Name string
	Type string
}

// registry holds the real C signatures for every entry in
// shadowtable.Shadowed; see the package doc comment.
var registry = map[string]sig{
	// Point-to-point.
	"MPI_Send": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Recv": {[]param{{"buf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"status", "MPI_Status *"}}},
	"MPI_Bsend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Ssend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Rsend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Isend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Irecv": {[]param{{"buf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ibsend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Issend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Irsend": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Sendrecv": {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"dest", "int"}, {"sendtag", "int"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"source", "int"}, {"recvtag", "int"}, {"comm", "MPI_Comm"}, {"status", "MPI_Status *"}}},
	"MPI_Sendrecv_replace": {[]param{{"buf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"sendtag", "int"}, {"source", "int"}, {"recvtag", "int"}, {"comm", "MPI_Comm"}, {"status", "MPI_Status *"}}},
	"MPI_Send_init": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Bsend_init": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ssend_init": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Rsend_init": {[]param{{"buf", "const void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"dest", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Recv_init": {[]param{{"buf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Probe": {[]param{{"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"status", "MPI_Status *"}}},
	"MPI_Iprobe": {[]param{{"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"flag", "int *"}, {"status", "MPI_Status *"}}},
	"MPI_Mprobe": {[]param{{"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"message", "MPI_Message *"}, {"status", "MPI_Status *"}}},
	"MPI_Improbe": {[]param{{"source", "int"}, {"tag", "int"}, {"comm", "MPI_Comm"}, {"flag", "int *"}, {"message", "MPI_Message *"}, {"status", "MPI_Status *"}}},

	// Pack/unpack.
	"MPI_Pack":      {[]param{{"inbuf", "const void *"}, {"incount", "int"}, {"datatype", "MPI_Datatype"}, {"outbuf", "void *"}, {"outsize", "int"}, {"position", "int *"}, {"comm", "MPI_Comm"}}},
	"MPI_Unpack":    {[]param{{"inbuf", "const void *"}, {"insize", "int"}, {"position", "int *"}, {"outbuf", "void *"}, {"outcount", "int"}, {"datatype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Pack_size": {[]param{{"incount", "int"}, {"datatype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"size", "int *"}}},

	// Collectives, blocking.
	"MPI_Barrier":               {[]param{{"comm", "MPI_Comm"}}},
	"MPI_Bcast":                 {[]param{{"buffer", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Gather":                {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Gatherv":               {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"displs", "const int *"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Scatter":               {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Scatterv":              {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"displs", "const int *"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Allgather":             {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Allgatherv":            {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"displs", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Alltoall":              {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Alltoallv":             {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const int *"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Alltoallw":             {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const MPI_Aint *"}, {"sendtypes", "const MPI_Datatype *"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const MPI_Aint *"}, {"recvtypes", "const MPI_Datatype *"}, {"comm", "MPI_Comm"}}},
	"MPI_Reduce":                {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"root", "int"}, {"comm", "MPI_Comm"}}},
	"MPI_Allreduce":             {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}}},
	"MPI_Scan":                  {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}}},
	"MPI_Exscan":                {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}}},
	"MPI_Reduce_scatter":        {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}}},
	"MPI_Reduce_scatter_block":  {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}}},

	// Collectives, nonblocking: the blocking signature above plus a
	// trailing MPI_Request *, in the same comm position.
	"MPI_Ibarrier":               {[]param{{"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ibcast":                 {[]param{{"buffer", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Igather":                {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Igatherv":               {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"displs", "const int *"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iscatter":               {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iscatterv":              {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"displs", "const int *"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iallgather":             {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iallgatherv":            {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"displs", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ialltoall":              {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ialltoallv":             {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const int *"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ialltoallw":             {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const MPI_Aint *"}, {"sendtypes", "const MPI_Datatype *"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const MPI_Aint *"}, {"recvtypes", "const MPI_Datatype *"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ireduce":                {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iallreduce":             {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iscan":                  {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Iexscan":                {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"count", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ireduce_scatter":        {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ireduce_scatter_block":  {[]param{{"sendbuf", "const void *"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"datatype", "MPI_Datatype"}, {"op", "MPI_Op"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},

	// Neighborhood collectives (cartesian/graph topology aware).
	"MPI_Neighbor_allgather":    {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Neighbor_allgatherv":   {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"displs", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Neighbor_alltoall":     {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Neighbor_alltoallv":    {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const int *"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}}},
	"MPI_Neighbor_alltoallw":    {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const MPI_Aint *"}, {"sendtypes", "const MPI_Datatype *"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const MPI_Aint *"}, {"recvtypes", "const MPI_Datatype *"}, {"comm", "MPI_Comm"}}},
	"MPI_Ineighbor_allgather":   {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ineighbor_allgatherv":  {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"displs", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ineighbor_alltoall":    {[]param{{"sendbuf", "const void *"}, {"sendcount", "int"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcount", "int"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ineighbor_alltoallv":   {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const int *"}, {"sendtype", "MPI_Datatype"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const int *"}, {"recvtype", "MPI_Datatype"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},
	"MPI_Ineighbor_alltoallw":   {[]param{{"sendbuf", "const void *"}, {"sendcounts", "const int *"}, {"sdispls", "const MPI_Aint *"}, {"sendtypes", "const MPI_Datatype *"}, {"recvbuf", "void *"}, {"recvcounts", "const int *"}, {"rdispls", "const MPI_Aint *"}, {"recvtypes", "const MPI_Datatype *"}, {"comm", "MPI_Comm"}, {"request", "MPI_Request *"}}},

	// Group/comm inspection.
	"MPI_Comm_group":   {[]param{{"comm", "MPI_Comm"}, {"group", "MPI_Group *"}}},
	"MPI_Comm_size":    {[]param{{"comm", "MPI_Comm"}, {"size", "int *"}}},
	"MPI_Comm_rank":    {[]param{{"comm", "MPI_Comm"}, {"rank", "int *"}}},
	"MPI_Comm_compare": {[]param{{"comm1", "MPI_Comm"}, {"comm2", "MPI_Comm"}, {"result", "int *"}}},

	// Comm construction.
	"MPI_Comm_dup":           {[]param{{"comm", "MPI_Comm"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_dup_with_info": {[]param{{"comm", "MPI_Comm"}, {"info", "MPI_Info"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_create":        {[]param{{"comm", "MPI_Comm"}, {"group", "MPI_Group"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_split":         {[]param{{"comm", "MPI_Comm"}, {"color", "int"}, {"key", "int"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_split_type":    {[]param{{"comm", "MPI_Comm"}, {"splitType", "int"}, {"key", "int"}, {"info", "MPI_Info"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_create_group":  {[]param{{"comm", "MPI_Comm"}, {"group", "MPI_Group"}, {"tag", "int"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_idup":          {[]param{{"comm", "MPI_Comm"}, {"newcomm", "MPI_Comm *"}, {"request", "MPI_Request *"}}},

	// Intercommunicator.
	"MPI_Comm_test_inter":   {[]param{{"comm", "MPI_Comm"}, {"flag", "int *"}}},
	"MPI_Comm_remote_size":  {[]param{{"comm", "MPI_Comm"}, {"size", "int *"}}},
	"MPI_Comm_remote_group": {[]param{{"comm", "MPI_Comm"}, {"group", "MPI_Group *"}}},
	"MPI_Intercomm_create":  {[]param{{"localComm", "MPI_Comm"}, {"localLeader", "int"}, {"peerComm", "MPI_Comm"}, {"remoteLeader", "int"}, {"tag", "int"}, {"newintercomm", "MPI_Comm *"}}},
	"MPI_Intercomm_merge":   {[]param{{"intercomm", "MPI_Comm"}, {"high", "int"}, {"newintracomm", "MPI_Comm *"}}},

	// Attributes.
	"MPI_Comm_set_attr":    {[]param{{"comm", "MPI_Comm"}, {"commKeyval", "int"}, {"attributeVal", "void *"}}},
	"MPI_Comm_get_attr":    {[]param{{"comm", "MPI_Comm"}, {"commKeyval", "int"}, {"attributeVal", "void *"}, {"flag", "int *"}}},
	"MPI_Comm_delete_attr": {[]param{{"comm", "MPI_Comm"}, {"commKeyval", "int"}}},
	"MPI_Attr_put":         {[]param{{"comm", "MPI_Comm"}, {"keyval", "int"}, {"attributeVal", "void *"}}},
	"MPI_Attr_get":         {[]param{{"comm", "MPI_Comm"}, {"keyval", "int"}, {"attributeVal", "void *"}, {"flag", "int *"}}},
	"MPI_Attr_delete":      {[]param{{"comm", "MPI_Comm"}, {"keyval", "int"}}},

	// Topology.
	"MPI_Cart_create":                  {[]param{{"commOld", "MPI_Comm"}, {"ndims", "int"}, {"dims", "const int *"}, {"periods", "const int *"}, {"reorder", "int"}, {"commCart", "MPI_Comm *"}}},
	"MPI_Cart_get":                     {[]param{{"comm", "MPI_Comm"}, {"maxdims", "int"}, {"dims", "int *"}, {"periods", "int *"}, {"coords", "int *"}}},
	"MPI_Cart_rank":                    {[]param{{"comm", "MPI_Comm"}, {"coords", "const int *"}, {"rank", "int *"}}},
	"MPI_Cart_coords":                  {[]param{{"comm", "MPI_Comm"}, {"rank", "int"}, {"maxdims", "int"}, {"coords", "int *"}}},
	"MPI_Cart_shift":                   {[]param{{"comm", "MPI_Comm"}, {"direction", "int"}, {"disp", "int"}, {"rankSource", "int *"}, {"rankDest", "int *"}}},
	"MPI_Cart_sub":                     {[]param{{"comm", "MPI_Comm"}, {"remainDims", "const int *"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Cart_map":                     {[]param{{"comm", "MPI_Comm"}, {"ndims", "int"}, {"dims", "const int *"}, {"periods", "const int *"}, {"newrank", "int *"}}},
	"MPI_Graph_create":                 {[]param{{"commOld", "MPI_Comm"}, {"nnodes", "int"}, {"index", "const int *"}, {"edges", "const int *"}, {"reorder", "int"}, {"commGraph", "MPI_Comm *"}}},
	"MPI_Graphdims_get":                {[]param{{"comm", "MPI_Comm"}, {"nnodes", "int *"}, {"nedges", "int *"}}},
	"MPI_Graph_get":                    {[]param{{"comm", "MPI_Comm"}, {"maxindex", "int"}, {"maxedges", "int"}, {"index", "int *"}, {"edges", "int *"}}},
	"MPI_Graph_neighbors_count":        {[]param{{"comm", "MPI_Comm"}, {"rank", "int"}, {"nneighbors", "int *"}}},
	"MPI_Graph_neighbors":              {[]param{{"comm", "MPI_Comm"}, {"rank", "int"}, {"maxneighbors", "int"}, {"neighbors", "int *"}}},
	"MPI_Graph_map":                    {[]param{{"comm", "MPI_Comm"}, {"nnodes", "int"}, {"index", "const int *"}, {"edges", "const int *"}, {"newrank", "int *"}}},
	"MPI_Dist_graph_create_adjacent":   {[]param{{"commOld", "MPI_Comm"}, {"indegree", "int"}, {"sources", "const int *"}, {"sourceweights", "const int *"}, {"outdegree", "int"}, {"destinations", "const int *"}, {"destweights", "const int *"}, {"info", "MPI_Info"}, {"reorder", "int"}, {"commDistGraph", "MPI_Comm *"}}},
	"MPI_Dist_graph_create":            {[]param{{"commOld", "MPI_Comm"}, {"n", "int"}, {"sources", "const int *"}, {"degrees", "const int *"}, {"destinations", "const int *"}, {"weights", "const int *"}, {"info", "MPI_Info"}, {"reorder", "int"}, {"commDistGraph", "MPI_Comm *"}}},
	"MPI_Dist_graph_neighbors":         {[]param{{"comm", "MPI_Comm"}, {"maxindegree", "int"}, {"sources", "int *"}, {"sourceweights", "int *"}, {"maxoutdegree", "int"}, {"destinations", "int *"}, {"destweights", "int *"}}},
	"MPI_Dist_graph_neighbors_count":   {[]param{{"comm", "MPI_Comm"}, {"indegree", "int *"}, {"outdegree", "int *"}, {"weighted", "int *"}}},

	// Connection management.
	"MPI_Comm_connect":        {[]param{{"portName", "const char *"}, {"info", "MPI_Info"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"newcomm", "MPI_Comm *"}}},
	"MPI_Comm_spawn":          {[]param{{"command", "const char *"}, {"argv", "char **"}, {"maxprocs", "int"}, {"info", "MPI_Info"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"intercomm", "MPI_Comm *"}, {"arrayOfErrcodes", "int *"}}},
	"MPI_Comm_spawn_multiple": {[]param{{"count", "int"}, {"arrayOfCommands", "char **"}, {"arrayOfArgv", "char ***"}, {"arrayOfMaxprocs", "const int *"}, {"arrayOfInfo", "const MPI_Info *"}, {"root", "int"}, {"comm", "MPI_Comm"}, {"intercomm", "MPI_Comm *"}, {"arrayOfErrcodes", "int *"}}},

	// One-sided window creation.
	"MPI_Win_create":          {[]param{{"base", "void *"}, {"size", "MPI_Aint"}, {"dispUnit", "int"}, {"info", "MPI_Info"}, {"comm", "MPI_Comm"}, {"win", "MPI_Win *"}}},
	"MPI_Win_allocate":        {[]param{{"size", "MPI_Aint"}, {"dispUnit", "int"}, {"info", "MPI_Info"}, {"comm", "MPI_Comm"}, {"baseptr", "void *"}, {"win", "MPI_Win *"}}},
	"MPI_Win_allocate_shared": {[]param{{"size", "MPI_Aint"}, {"dispUnit", "int"}, {"info", "MPI_Info"}, {"comm", "MPI_Comm"}, {"baseptr", "void *"}, {"win", "MPI_Win *"}}},
	"MPI_Win_create_dynamic":  {[]param{{"info", "MPI_Info"}, {"comm", "MPI_Comm"}, {"win", "MPI_Win *"}}},

	// Error handlers.
	"MPI_Comm_set_errhandler":  {[]param{{"comm", "MPI_Comm"}, {"errhandler", "MPI_Errhandler"}}},
	"MPI_Comm_get_errhandler":  {[]param{{"comm", "MPI_Comm"}, {"errhandler", "MPI_Errhandler *"}}},
	"MPI_Errhandler_set":       {[]param{{"comm", "MPI_Comm"}, {"errhandler", "MPI_Errhandler"}}},
	"MPI_Errhandler_get":       {[]param{{"comm", "MPI_Comm"}, {"errhandler", "MPI_Errhandler *"}}},
	"MPI_Comm_call_errhandler": {[]param{{"comm", "MPI_Comm"}, {"errorcode", "int"}}},
	"MPI_Abort":                {[]param{{"comm", "MPI_Comm"}, {"errorcode", "int"}}},

	// File.
	"MPI_File_open": {[]param{{"comm", "MPI_Comm"}, {"filename", "const char *"}, {"amode", "int"}, {"info", "MPI_Info"}, {"fh", "MPI_File *"}}},

	// Fault-tolerance extensions (ULFM).
	"MPIX_Comm_failure_get_acked":    {[]param{{"comm", "MPI_Comm"}, {"failedgrp", "MPI_Group *"}}},
	"MPIX_Comm_reenable_any_source":  {[]param{{"comm", "MPI_Comm"}, {"flag", "int *"}}},
}

type renderEntry struct {
	Entry          shadowtable.ShadowEntry
	ParamList      string
	ArgList        string
	NameNoPrefix   string
	TranslateLines []string
}

func main() {
	var out []renderEntry
	var missing []string

	noTranslate := map[string]bool{}
	for _, n := range shadowtable.NoTranslate {
		noTranslate[n] = true
	}

	for _, e := range shadowtable.Shadowed {
		s, ok := registry[e.Name]
		if !ok {
			missing = append(missing, e.Name)
			continue
		}

		var params, args []string
		var translate []string
		for i, p := range s.Params {
			pos := i + 1
			params = append(params, fmt.Sprintf("%s %s", p.Name, cType(p.Type)))
			isComm := false
			for _, c := range e.CommArgs {
				if c == pos {
					isComm = true
				}
			}
			if isComm && !noTranslate[e.Name] {
				translate = append(translate, fmt.Sprintf("%s = translateComm(%s)", p.Name, p.Name))
				args = append(args, p.Name)
			} else {
				args = append(args, p.Name)
			}
		}

		out = append(out, renderEntry{
			Entry:          e,
			ParamList:      strings.Join(params, ", "),
			ArgList:        strings.Join(args, ", "),
			NameNoPrefix:   strings.TrimPrefix(e.Name, "MPI_"),
			TranslateLines: translate,
		})
	}

	tmpl := template.Must(template.New("shadows").Parse(tmplText))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, out); err != nil {
		log.Fatal(err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// leave unformatted so the error is visible in the output file
		formatted = buf.Bytes()
	}

	if err := os.WriteFile("shadows_gen.go", formatted, 0o644); err != nil {
		log.Fatal(err)
	}

	if len(missing) != 0 {
		log.Printf("gen-shadows: %d entries have no registered C signature and were skipped: %v", len(missing), missing)
	}
}

// cType maps a registry C type string to its cgo-qualified Go
// spelling: "const" drops (cgo has no const-qualified types), each
// trailing "*" becomes a leading Go "*", and void (with exactly one
// star, the only form MPI uses) maps to unsafe.Pointer since cgo has
// no C.void.
func cType(t string) string {
	t = strings.TrimSpace(t)
	t = strings.TrimPrefix(t, "const ")
	t = strings.TrimSpace(t)

	stars := 0
	for strings.HasSuffix(t, "*") {
		t = strings.TrimSpace(strings.TrimSuffix(t, "*"))
		stars++
	}

	if t == "void" && stars == 1 {
		return "unsafe.Pointer"
	}

	return strings.Repeat("*", stars) + "C." + t
}
